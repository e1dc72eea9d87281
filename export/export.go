package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/triageagent/triage-cli/display"
)

var ErrClipboardUnsupported = errors.New("clipboard is not available on this system")

type Exporter interface {
	Export(ctx context.Context) error
	ToFile(ctx context.Context) error
	ToClipboard(ctx context.Context) error
}

const (
	Clipboard = "clipboard"
	TextFile  = "txt"
	Skip      = "skip"
)

type exporter struct {
	report string
	dir    string
	svc    Service
}

// NewExporter exports report. Files are written to dir.
func NewExporter(report string, dir string) Exporter {
	return &exporter{
		report: report,
		dir:    dir,
		svc:    NewService(),
	}
}

func (e *exporter) Export(ctx context.Context) error {
	var format string
	if err := huh.NewSelect[string]().
		Title("Export Report").
		Description("Select where the report should go").
		Options(
			huh.NewOption("Copy to clipboard", Clipboard),
			huh.NewOption("Save as text file", TextFile),
			huh.NewOption("Skip", Skip),
		).
		Value(&format).
		Run(); err != nil {
		return err
	}

	switch format {
	case Clipboard:
		return e.ToClipboard(ctx)
	case TextFile:
		return e.ToFile(ctx)
	case Skip:
		return nil
	default:
		return errors.New("invalid export format")
	}
}

func (e *exporter) ToFile(ctx context.Context) error {
	path, err := e.svc.ToFile(ctx, e.dir, e.report)
	if err != nil {
		return err
	}
	display.Info(fmt.Sprintf("Report saved: %s", path))
	return nil
}

func (e *exporter) ToClipboard(ctx context.Context) error {
	if err := e.svc.ToClipboard(ctx, e.report); err != nil {
		return err
	}
	display.Success("Report copied to clipboard")
	return nil
}
