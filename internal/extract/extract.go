// Package extract recovers a JSON object embedded in free-form model output.
//
// The scan is deliberately greedy and non-validating: it takes everything
// from the first '{' to the last '}' and parses that span as one JSON value.
// Text with several objects, or with braces inside prose, is expected to
// fail as malformed rather than be repaired.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Outcome classifies an extraction attempt.
type Outcome int

const (
	OutcomeParsed Outcome = iota
	OutcomeNotFound
	OutcomeMalformed
)

// Messages returned to callers in the error payload.
const (
	MessageNotFound  = "Não foi possível extrair dados JSON da resposta"
	MessageMalformed = "Resposta em formato inválido"
)

// ErrorKey is the payload key used for extraction failures.
const ErrorKey = "error"

// ErrNoJSON is carried on a not-found result.
var ErrNoJSON = errors.New("no brace-delimited span in text")

func (o Outcome) String() string {
	switch o {
	case OutcomeParsed:
		return "parsed"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Result is the outcome of Extract. Data is set only when Outcome is
// OutcomeParsed; Err explains the failure otherwise.
type Result struct {
	Outcome Outcome
	Data    map[string]any
	Err     error
}

// OK reports whether an object was recovered.
func (r Result) OK() bool {
	return r.Outcome == OutcomeParsed
}

// Payload returns the parsed object, or a single-key error mapping.
func (r Result) Payload() map[string]any {
	switch r.Outcome {
	case OutcomeParsed:
		return r.Data
	case OutcomeNotFound:
		return map[string]any{ErrorKey: MessageNotFound}
	default:
		return map[string]any{ErrorKey: MessageMalformed}
	}
}

// Extract parses the widest brace-delimited span of text. It performs no I/O.
func Extract(text string) Result {
	span, ok := Span(text)
	if !ok {
		return Result{Outcome: OutcomeNotFound, Err: ErrNoJSON}
	}

	data, err := decodeObject(span)
	if err != nil {
		return Result{Outcome: OutcomeMalformed, Err: err}
	}
	return Result{Outcome: OutcomeParsed, Data: data}
}

// Span returns the substring from the first '{' to the last '}' inclusive.
func Span(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}

func decodeObject(span string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(span))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	// The span must hold exactly one value.
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after object")
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return data, nil
}
