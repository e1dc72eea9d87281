package playbook

import (
	"sort"

	"github.com/triageagent/triage-cli/slice"
)

// Record is a named troubleshooting procedure.
// Commands is keyed by device/OS identifier.
type Record struct {
	Name      string              `json:"name" yaml:"name"`
	Keywords  []string            `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Questions []string            `json:"questions,omitempty" yaml:"questions,omitempty"`
	Steps     []string            `json:"steps,omitempty" yaml:"steps,omitempty"`
	Commands  map[string][]string `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// CommandsFor returns the commands recorded for device, or nil.
func (r Record) CommandsFor(device string) []string {
	if r.Commands == nil {
		return nil
	}
	return r.Commands[device]
}

// Catalog maps a category to its ordered playbooks.
// A Catalog is never mutated after it has been loaded.
type Catalog map[string][]Record

// Records returns the playbooks of category in catalog order.
func (c Catalog) Records(category string) []Record {
	if c == nil {
		return nil
	}
	return c[category]
}

// Categories returns the category names sorted alphabetically.
func (c Catalog) Categories() []string {
	categories := make([]string, 0, len(c))
	for category := range c {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Devices returns every device that has at least one command, sorted.
func (c Catalog) Devices() []string {
	var devices []string
	for _, records := range c {
		for _, r := range records {
			for device := range r.Commands {
				if !slice.Has(devices, device) {
					devices = append(devices, device)
				}
			}
		}
	}
	sort.Strings(devices)
	return devices
}

// Len returns the number of playbooks across all categories.
func (c Catalog) Len() int {
	var n int
	for _, records := range c {
		n += len(records)
	}
	return n
}
