// Package param handles <placeholder> parameters inside playbook commands,
// such as "systemctl status <service>".
package param

import (
	"regexp"
	"strings"

	"github.com/triageagent/triage-cli/slice"
)

var paramRegex = regexp.MustCompile(`<([a-zA-Z0-9-_]+)>`)

// Extract returns the placeholders of input in order of appearance.
func Extract(input string) []string {
	matches := paramRegex.FindAllStringSubmatch(input, -1)

	var params []string
	for _, match := range matches {
		if len(match) >= 1 {
			params = append(params, match[0])
		}
	}
	return params
}

// ExtractAll returns the distinct placeholders across commands.
func ExtractAll(commands []string) []string {
	var params []string
	for _, c := range commands {
		for _, p := range Extract(c) {
			if !slice.Has(params, p) {
				params = append(params, p)
			}
		}
	}
	return params
}

// Fill substitutes placeholders with values. Placeholders without a value, or
// with an empty one, are left untouched.
func Fill(command string, values map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(command, func(p string) string {
		if v := strings.TrimSpace(values[p]); v != "" {
			return v
		}
		return p
	})
}
