package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"github.com/triageagent/triage-cli/config"
	"github.com/triageagent/triage-cli/display"
	"github.com/triageagent/triage-cli/export"
	"github.com/triageagent/triage-cli/matcher"
	"github.com/triageagent/triage-cli/param"
	"github.com/triageagent/triage-cli/playbook"
	"github.com/triageagent/triage-cli/report"
	"github.com/triageagent/triage-cli/slice"
	"github.com/triageagent/triage-cli/theme"
	"golang.org/x/term"
)

type analyzeOptions struct {
	category   string
	device     string
	context    string
	playbooks  string
	output     string
	copy       bool
	plain      bool
	verbose    bool
	fillParams bool
}

var analyzeOpts analyzeOptions

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [description]",
	Short: "Analyze a problem and build a troubleshooting report",
	Example: `
  triage analyze # interactive mode
  triage analyze -c network --device Windows "DNS fails to resolve names, error seen"
  triage analyze -c server --device Linux --plain "disk full on /var" > report.txt
  triage analyze -c account --playbooks ./playbooks.yaml --copy "password locked after reset"
  `,
	Long: `
  Analyze matches the problem description against the playbooks of a category
  and builds a report with clarifying questions, recommended steps and
  commands for your device.

  Inputs not passed as flags are taken from the config file, and when running
  in a terminal any that are still missing are asked for interactively.
  `,
	Run: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeOpts.category, "category", "c", "", "playbook category, e.g. network")
	f.StringVar(&analyzeOpts.device, "device", "", "device or OS used to pick commands, e.g. Windows")
	f.StringVar(&analyzeOpts.context, "context", "", "free-text context such as site or user")
	f.StringVar(&analyzeOpts.playbooks, "playbooks", "", "path to a JSON or YAML playbook catalog")
	f.StringVarP(&analyzeOpts.output, "output", "o", "", "write the report to a text file in this directory")
	f.BoolVar(&analyzeOpts.copy, "copy", false, "copy the report to the clipboard")
	f.BoolVar(&analyzeOpts.plain, "plain", false, "print the plain text report without prompts")
	f.BoolVar(&analyzeOpts.verbose, "verbose", false, "show the score of every playbook in the category")
	f.BoolVar(&analyzeOpts.fillParams, "fill-params", false, "ask for values of <placeholders> in suggested commands")
	analyzeCmd.MarkFlagsMutuallyExclusive("copy", "output")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	logger := loggerFromCtx(ctx).With("command", "analyze")

	cfg, err := config.LoadOrDefault()
	if err != nil {
		logger.Debug("error loading config", "error", err, "message", "falling back to defaults")
		cfg = &config.Config{}
	}

	in := resolveInput(analyzeOpts, cfg, args)
	plain, interactive := outputMode(analyzeOpts.plain, term.IsTerminal(int(os.Stdin.Fd())), term.IsTerminal(int(os.Stdout.Fd())))

	catalog, err := loadCatalog(ctx, resolvePlaybooksPath(analyzeOpts, cfg), interactive)
	if err != nil {
		display.FatalErrWithSupportCTA(err)
	}
	logger.Debug("loaded playbooks", "categories", len(catalog), "playbooks", catalog.Len())

	if interactive && needsInput(in) {
		if err := runAnalyzeForm(catalog, &in); err != nil {
			display.FatalErr(err)
		}
	}

	match := matcher.FindBestMatch(catalog, in.Category, in.Description)
	logger.Debug("match result", "category", in.Category, "matched", match.Matched(), "score", match.Score)

	if interactive && analyzeOpts.fillParams && match.Matched() {
		match, err = fillCommandParams(match, in.Device)
		if err != nil {
			display.FatalErr(err)
		}
	}
	in.Match = match

	text := report.Build(in)
	if plain {
		fmt.Println(text)
	} else {
		rendered, err := report.Render(in, report.StyleAuto)
		if err != nil {
			logger.Debug("error rendering report", "error", err, "message", "falling back to plain text")
			rendered = text + "\n"
		}
		fmt.Print(rendered)
	}

	if analyzeOpts.verbose {
		showRanking(catalog, in)
	}

	exporter := export.NewExporter(text, analyzeOpts.output)
	switch {
	case analyzeOpts.copy:
		err = exporter.ToClipboard(ctx)
	case analyzeOpts.output != "":
		err = exporter.ToFile(ctx)
	case interactive:
		err = exporter.Export(ctx)
	}
	if err != nil {
		display.FatalErr(err)
	}
}

// resolveInput applies flags over config. The description comes from args.
func resolveInput(opts analyzeOptions, cfg *config.Config, args []string) report.Input {
	return report.Input{
		Category:    firstNonEmpty(opts.category, cfg.Category),
		Device:      firstNonEmpty(opts.device, cfg.Device),
		Context:     firstNonEmpty(opts.context, cfg.Context),
		Description: strings.TrimSpace(strings.Join(args, " ")),
	}
}

func resolvePlaybooksPath(opts analyzeOptions, cfg *config.Config) string {
	return firstNonEmpty(opts.playbooks, cfg.Playbooks)
}

// outputMode reports whether to print the plain report and whether prompts may
// be shown. Prompts need a terminal on both stdin and stdout.
func outputMode(plainFlag, stdinTTY, stdoutTTY bool) (plain bool, interactive bool) {
	plain = plainFlag || !stdoutTTY
	interactive = !plain && stdinTTY
	return plain, interactive
}

func needsInput(in report.Input) bool {
	return in.Category == "" || in.Device == "" || in.Description == ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func loadCatalog(ctx context.Context, path string, interactive bool) (playbook.Catalog, error) {
	logger := loggerFromCtx(ctx)
	if path == "" {
		logger.Debug("no playbooks path configured, using bundled playbooks")
	}

	if !interactive {
		return playbook.Load(path)
	}

	var catalog playbook.Catalog
	var err error
	if serr := huhSpinner.New().Title("Loading playbooks").Action(func() {
		catalog, err = playbook.Load(path)
	}).Run(); serr != nil {
		return nil, serr
	}
	return catalog, err
}

func runAnalyzeForm(catalog playbook.Catalog, in *report.Input) error {
	var fields []huh.Field

	if in.Category == "" {
		fields = append(fields, choiceField("Category", catalog.Categories(), &in.Category))
	}

	if in.Device == "" {
		fields = append(fields, choiceField("Device/OS", catalog.Devices(), &in.Device))
	}

	if in.Context == "" {
		fields = append(fields, huh.NewInput().
			Title("Context").
			Placeholder("site, user, or anything that narrows the scope").
			Value(&in.Context))
	}

	if in.Description == "" {
		fields = append(fields, huh.NewText().
			Title("Describe the problem").
			Placeholder("exact error text, what changed, when it last worked").
			Value(&in.Description))
	}

	customTheme := theme.New()
	form := huh.NewForm(huh.NewGroup(fields...).Title("Troubleshoot")).WithTheme(customTheme)
	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to run analyze form: %w", err)
	}
	in.Description = strings.TrimSpace(in.Description)
	return nil
}

// choiceField offers options in a select, or free text when there are none,
// since an empty select cannot be submitted.
func choiceField(title string, options []string, value *string) huh.Field {
	if len(options) == 0 {
		return huh.NewInput().Title(title).Value(value)
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(value)
}

// fillCommandParams asks for <placeholder> values in the device's commands and
// returns a match whose record carries the filled commands. The catalog record
// is not modified.
func fillCommandParams(match matcher.Result, device string) (matcher.Result, error) {
	cmds := match.Record.CommandsFor(device)
	params := param.ExtractAll(cmds)
	if len(params) == 0 {
		return match, nil
	}

	values := make([]string, len(params))
	var fields []huh.Field
	for i, p := range params {
		fields = append(fields, huh.NewInput().Title(p).Key(p).Value(&values[i]))
	}

	customTheme := theme.New()
	group := huh.NewGroup(fields...).Title("Fill in command parameters").WithTheme(customTheme)
	if err := huh.NewForm(group).WithTheme(customTheme).Run(); err != nil {
		return match, fmt.Errorf("failed to run parameter form: %w", err)
	}

	byParam := make(map[string]string, len(params))
	for i, p := range params {
		byParam[p] = values[i]
	}
	return withCommands(match, device, slice.Map(cmds, func(c string) string {
		return param.Fill(c, byParam)
	})), nil
}

func withCommands(match matcher.Result, device string, cmds []string) matcher.Result {
	rec := *match.Record
	rec.Commands = make(map[string][]string, len(match.Record.Commands))
	for d, c := range match.Record.Commands {
		rec.Commands[d] = c
	}
	rec.Commands[device] = cmds
	return matcher.Result{Record: &rec, Score: match.Score}
}

func showRanking(catalog playbook.Catalog, in report.Input) {
	results := matcher.Rank(catalog, in.Category, in.Description)
	if len(results) == 0 {
		display.Muted(fmt.Sprintf("no playbooks in category %q", in.Category))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Scores (match threshold %d):\n", matcher.MinScore)
	for _, r := range results {
		fmt.Fprintf(&b, "%3d  %s\n", r.Score, r.Record.Name)
	}
	display.Muted(strings.TrimRight(b.String(), "\n"))
}
