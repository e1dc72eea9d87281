package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triageagent/triage-cli/matcher"
	"github.com/triageagent/triage-cli/playbook"
	"github.com/triageagent/triage-cli/report"
)

var generatedAt = time.Date(2024, time.March, 7, 14, 5, 9, 0, time.UTC)

var catalog = playbook.Catalog{
	"network": {
		{
			Name:      "DNS Outage",
			Keywords:  []string{"dns", "resolve"},
			Questions: []string{"Q1"},
			Steps:     []string{"S1"},
			Commands:  map[string][]string{"Windows": {"ipconfig /flushdns"}, "Linux": {}},
		},
	},
}

func input(description, device string) report.Input {
	return report.Input{
		Category:    "network",
		Device:      device,
		Context:     "Office LAN",
		Description: description,
		Match:       matcher.FindBestMatch(catalog, "network", description),
		GeneratedAt: generatedAt,
	}
}

func TestBuildMatched(t *testing.T) {
	got := report.Build(input("DNS fails to resolve names, error seen", "Windows"))

	expected := strings.Join([]string{
		"AI Troubleshooting Agent Report",
		"Date: 3/7/2024, 2:05:09 PM",
		"Category: network",
		"Device/OS: Windows",
		"Context: Office LAN",
		"",
		"Problem Description:",
		"DNS fails to resolve names, error seen",
		"",
		"Best Match Playbook: DNS Outage",
		"",
		"Clarifying Questions:",
		"1. Q1",
		"",
		"Recommended Steps:",
		"1. S1",
		"",
		"Suggested Commands (Windows):",
		"- ipconfig /flushdns",
	}, "\n")
	assert.Equal(t, expected, got)
}

func TestBuildNoMatch(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{name: "no hits", description: "everything is fine today"},
		{name: "single heuristic", description: "error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := report.Build(input(tc.description, "Windows"))

			assert.True(t, strings.HasSuffix(got, "\n\n"+report.GeneralTriageLine))
			assert.Contains(t, got, "No strong playbook match found. Use general triage: reproduce → scope → isolate → remediate → verify.")
			assert.NotContains(t, got, "Recommended Steps")
			assert.NotContains(t, got, "Best Match Playbook")
			assert.NotContains(t, got, "Suggested Commands")
		})
	}
}

func TestBuildEmptyDescription(t *testing.T) {
	got := report.Build(report.Input{GeneratedAt: generatedAt})

	expected := strings.Join([]string{
		"AI Troubleshooting Agent Report",
		"Date: 3/7/2024, 2:05:09 PM",
		"Category: ",
		"Device/OS: ",
		"Context: ",
		"",
		"Problem Description:",
		"(none provided)",
		"",
		report.GeneralTriageLine,
	}, "\n")
	assert.Equal(t, expected, got)
}

func TestBuildCommandsFallback(t *testing.T) {
	tests := []struct {
		name   string
		device string
	}{
		{name: "empty command list", device: "Linux"},
		{name: "unknown device", device: "ChromeOS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := report.Build(input("dns resolve", tc.device))
			assert.True(t, strings.HasSuffix(got, "Suggested Commands ("+tc.device+"):\n(none)"), got)
		})
	}
}

func TestBuildEmptyLists(t *testing.T) {
	rec := &playbook.Record{Name: "Bare"}
	got := report.Build(report.Input{
		Device:      "macOS",
		Description: "x",
		Match:       matcher.Result{Record: rec, Score: 2},
		GeneratedAt: generatedAt,
	})

	assert.Contains(t, got, "Best Match Playbook: Bare\n\nClarifying Questions:\n\nRecommended Steps:\n\nSuggested Commands (macOS):\n(none)")
}

func TestBuildNumbering(t *testing.T) {
	rec := &playbook.Record{
		Name:      "Many",
		Questions: []string{"a", "b", "c"},
		Steps:     []string{"x", "y"},
		Commands:  map[string][]string{"Linux": {"one", "two"}},
	}
	got := report.Build(report.Input{
		Device:      "Linux",
		Match:       matcher.Result{Record: rec, Score: 4},
		GeneratedAt: generatedAt,
	})

	assert.Contains(t, got, "Clarifying Questions:\n1. a\n2. b\n3. c\n\n")
	assert.Contains(t, got, "Recommended Steps:\n1. x\n2. y\n\n")
	assert.Contains(t, got, "Suggested Commands (Linux):\n- one\n- two")
}

func TestBuildDefaultsTimestamp(t *testing.T) {
	got := report.Build(report.Input{})
	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	require.True(t, strings.HasPrefix(lines[1], "Date: "))
	_, err := time.ParseInLocation(report.DateLayout, strings.TrimPrefix(lines[1], "Date: "), time.Local)
	assert.NoError(t, err)
}

func TestMarkdown(t *testing.T) {
	md, err := report.Markdown(input("DNS fails to resolve names, error seen", "Windows"))
	require.NoError(t, err)
	assert.Contains(t, md, "## Best Match Playbook: DNS Outage")
	assert.Contains(t, md, "1. Q1")
	assert.Contains(t, md, "ipconfig /flushdns")
	assert.NotContains(t, md, "General Triage Flow")

	md, err = report.Markdown(input("everything is fine today", "Windows"))
	require.NoError(t, err)
	assert.Contains(t, md, "### General Triage Flow")
	assert.Contains(t, md, "5. "+report.GeneralTriage[4])
	assert.Contains(t, md, "### Next Details to Collect")
	assert.NotContains(t, md, "Best Match Playbook")
}

func TestRender(t *testing.T) {
	out, err := report.Render(input("dns resolve", "Linux"), report.StyleNoTTY)
	require.NoError(t, err)
	assert.Contains(t, out, "Best Match Playbook: DNS Outage")
	assert.Contains(t, out, "1. Q1")
}

func TestRenderUnknownStyle(t *testing.T) {
	_, err := report.Render(input("dns resolve", "Linux"), "no-such-style")
	assert.Error(t, err)
}

func TestMarkdownEscapesTableCells(t *testing.T) {
	in := input("dns resolve", "Windows")
	in.Category = "net|work"
	in.Context = "floor 2 | room 5\nbuilding B\r\nwing C"

	md, err := report.Markdown(in)
	require.NoError(t, err)
	assert.Contains(t, md, `| Category | net\|work |`)
	assert.Contains(t, md, `| Context | floor 2 \| room 5 building B wing C |`)
}
