package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/triageagent/triage-cli/cmd/component/list"
	"github.com/triageagent/triage-cli/config"
	"github.com/triageagent/triage-cli/display"
	"github.com/triageagent/triage-cli/playbook"
	"github.com/triageagent/triage-cli/theme"
	"golang.org/x/term"
)

var playbooksOpts struct {
	device    string
	playbooks string
	plain     bool
}

// playbooksCmd represents the playbooks command
var playbooksCmd = &cobra.Command{
	Use:   "playbooks [category]",
	Short: "Browse the troubleshooting playbooks",
	Example: `
  triage playbooks
  triage playbooks network --device macOS
  triage playbooks --plain --playbooks ./playbooks.yaml
  `,
	Long: `
  Playbooks lists the playbooks of every category, or of a single category.

  In the interactive browser press c to copy the selected playbook's commands
  for --device to the clipboard.
  `,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "playbooks")

		cfg, err := config.LoadOrDefault()
		if err != nil {
			logger.Debug("error loading config", "error", err, "message", "falling back to defaults")
			cfg = &config.Config{}
		}

		catalog, err := playbook.Load(firstNonEmpty(playbooksOpts.playbooks, cfg.Playbooks))
		if err != nil {
			display.FatalErrWithSupportCTA(err)
		}

		var category string
		if len(args) == 1 {
			category = args[0]
			if _, ok := catalog[category]; !ok {
				display.FatalErr(fmt.Errorf("unknown category %q", category), "run `triage categories` to see the available categories")
			}
		}
		device := firstNonEmpty(playbooksOpts.device, cfg.Device)

		items := playbookItems(catalog, category, device)
		if playbooksOpts.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
			printPlaybooks(os.Stdout, items)
			return
		}

		title := "Playbooks"
		if category != "" {
			title = "Playbooks: " + category
		}
		var programOutput = termenv.NewOutput(os.Stdout, termenv.WithColorCache(true))
		p := tea.NewProgram(list.NewModel(items, title, device), tea.WithOutput(programOutput), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			display.FatalErr(fmt.Errorf("could not display playbooks: %w", err))
		}
	},
}

func init() {
	f := playbooksCmd.Flags()
	f.StringVar(&playbooksOpts.device, "device", "", "device whose commands are copied")
	f.StringVar(&playbooksOpts.playbooks, "playbooks", "", "path to a JSON or YAML playbook catalog")
	f.BoolVar(&playbooksOpts.plain, "plain", false, "print the playbooks instead of opening the browser")
	rootCmd.AddCommand(playbooksCmd)
}

// playbookItems lists playbooks by category name, then catalog order.
func playbookItems(catalog playbook.Catalog, category string, device string) []list.Item {
	categories := catalog.Categories()
	if category != "" {
		categories = []string{category}
	}

	var items []list.Item
	for _, c := range categories {
		for _, r := range catalog.Records(c) {
			items = append(items, list.Item{
				Name:     r.Name,
				Category: c,
				Keywords: r.Keywords,
				Commands: r.CommandsFor(device),
			})
		}
	}
	return items
}

func printPlaybooks(w io.Writer, items []list.Item) {
	var current string
	for _, i := range items {
		if i.Category != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			current = i.Category
			fmt.Fprintln(w, theme.Heading.Render(current))
		}
		fmt.Fprintf(w, "  %s %s\n", i.Name, theme.Subtle.Render("("+strings.Join(i.Keywords, ", ")+")"))
	}
}
