package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/futebol-bot-service/internal/domain"
	"github.com/preston-bernstein/futebol-bot-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", rr.Body.String())
	}
}

func TestWriteErrorOmitsRequestIDWhenUnknown(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	writeError(rr, req, http.StatusBadRequest, "nope", nil)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if _, ok := body["requestId"]; ok {
		t.Fatalf("expected no requestId, got %v", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if !strings.Contains(buf.String(), "failed to encode response") {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestDecodeBody(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"team":"Vitória"}`))
	got, err := decodeBody[domain.TeamRequest](rr, req)
	if err != nil || got.Team != "Vitória" {
		t.Fatalf("unexpected decode result %+v err %v", got, err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	if _, err := decodeBody[domain.TeamRequest](rr, req); !errors.Is(err, errEmptyBody) {
		t.Fatalf("expected errEmptyBody for empty body, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("null"))
	if _, err := decodeBody[domain.TeamRequest](rr, req); !errors.Is(err, errEmptyBody) {
		t.Fatalf("expected errEmptyBody for null, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("[1,2]"))
	if _, err := decodeBody[domain.TeamRequest](rr, req); err == nil || errors.Is(err, errEmptyBody) {
		t.Fatalf("expected type error for array, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Body = nil
	if _, err := decodeBody[domain.TeamRequest](rr, req); !errors.Is(err, errEmptyBody) {
		t.Fatalf("expected errEmptyBody for nil body, got %v", err)
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	if loggerFromContext(nil, logger) != logger {
		t.Fatalf("expected fallback for nil request")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if loggerFromContext(req, logger) != logger {
		t.Fatalf("expected fallback when context has no logger")
	}
}
