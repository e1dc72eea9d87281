package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/triageagent/triage-cli/matcher"
)

const (
	Title = "AI Troubleshooting Agent Report"

	// DateLayout mirrors the en-US locale date string.
	DateLayout = "1/2/2006, 3:04:05 PM"

	NoneProvided = "(none provided)"
	None         = "(none)"

	GeneralTriageLine = "No strong playbook match found. Use general triage: reproduce → scope → isolate → remediate → verify."
)

type Input struct {
	Category    string
	Device      string
	Context     string
	Description string
	Match       matcher.Result

	// GeneratedAt defaults to time.Now when zero.
	GeneratedAt time.Time
}

func (in Input) generatedAt() time.Time {
	if in.GeneratedAt.IsZero() {
		return time.Now()
	}
	return in.GeneratedAt
}

func (in Input) description() string {
	if in.Description == "" {
		return NoneProvided
	}
	return in.Description
}

// Build renders the plain text report offered for copy and export.
// Lines are separated by "\n" and the output has no trailing newline.
func Build(in Input) string {
	var lines []string
	lines = append(lines,
		Title,
		"Date: "+in.generatedAt().Format(DateLayout),
		"Category: "+in.Category,
		"Device/OS: "+in.Device,
		"Context: "+in.Context,
		"",
		"Problem Description:",
		in.description(),
		"",
	)

	if !in.Match.Matched() {
		lines = append(lines, GeneralTriageLine)
		return strings.Join(lines, "\n")
	}

	rec := in.Match.Record
	lines = append(lines, "Best Match Playbook: "+rec.Name, "")

	lines = append(lines, "Clarifying Questions:")
	lines = append(lines, numbered(rec.Questions)...)
	lines = append(lines, "")

	lines = append(lines, "Recommended Steps:")
	lines = append(lines, numbered(rec.Steps)...)
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Suggested Commands (%s):", in.Device))
	cmds := rec.CommandsFor(in.Device)
	if len(cmds) == 0 {
		lines = append(lines, None)
	}
	for _, c := range cmds {
		lines = append(lines, "- "+c)
	}

	return strings.Join(lines, "\n")
}

func numbered(items []string) []string {
	out := make([]string, 0, len(items))
	for i, item := range items {
		out = append(out, fmt.Sprintf("%d. %s", i+1, item))
	}
	return out
}
