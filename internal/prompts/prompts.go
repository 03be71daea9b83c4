// Package prompts renders the instructions sent to the model. The wording is
// data: nothing downstream relies on the model honouring the requested shape.
package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// Ping is the canned connectivity prompt.
const Ping = "Me responda apenas 'OK' se estiver funcionando"

const (
	teamInfoTemplate = "team_info.tmpl"
	lineupTemplate   = "lineup.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Set holds the parsed prompt templates.
type Set struct {
	tmpl *template.Template
}

type params struct {
	Team string
}

// Load parses the embedded templates.
func Load() (*Set, error) {
	tmpl, err := template.New("prompts").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse prompt templates: %w", err)
	}
	return &Set{tmpl: tmpl}, nil
}

// MustLoad is Load for process start, where a broken embed is a build defect.
func MustLoad() *Set {
	set, err := Load()
	if err != nil {
		panic(err)
	}
	return set
}

// TeamInfo renders the full team briefing prompt.
func (s *Set) TeamInfo(team string) (string, error) {
	return s.render(teamInfoTemplate, team)
}

// Lineup renders the lineup-only prompt.
func (s *Set) Lineup(team string) (string, error) {
	return s.render(lineupTemplate, team)
}

func (s *Set) render(name, team string) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, params{Team: strings.TrimSpace(team)}); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
