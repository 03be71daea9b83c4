package testutil

import (
	"context"
	"sync"
)

// StubProvider is a scripted text provider. It records every prompt it
// receives and replies with Reply or Err.
type StubProvider struct {
	Reply     string
	Err       error
	ModelName string

	mu      sync.Mutex
	prompts []string
}

func (p *StubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	p.prompts = append(p.prompts, prompt)
	p.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.Reply, p.Err
}

func (p *StubProvider) Name() string { return "stub" }

func (p *StubProvider) Model() string {
	if p.ModelName == "" {
		return "stub-model"
	}
	return p.ModelName
}

// Prompts returns a copy of the prompts seen so far.
func (p *StubProvider) Prompts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prompts...)
}

// Calls returns how many times Generate ran.
func (p *StubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}
