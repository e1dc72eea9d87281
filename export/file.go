package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
)

// FileName returns the export file name for a report generated at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("troubleshooting-report-%d.txt", t.UnixMilli())
}

type Service interface {
	ToFile(ctx context.Context, dir string, report string) (string, error)
	ToClipboard(ctx context.Context, report string) error
}

type svc struct {
	now       func() time.Time
	writeClip func(string) error
	create    func(path string) (io.WriteCloser, error)
}

func NewService() Service {
	return &svc{
		now:       time.Now,
		writeClip: clipboard.WriteAll,
		create:    createExclusive,
	}
}

func createExclusive(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

// ToFile writes report to dir and returns the path of the new file. An empty
// dir means the working directory.
func (s *svc) ToFile(_ context.Context, dir string, report string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(s.now()))
	f, err := s.create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if _, err := io.WriteString(f, report); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write report to file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close report file: %w", err)
	}
	return path, nil
}

func (s *svc) ToClipboard(_ context.Context, report string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := s.writeClip(report); err != nil {
		return fmt.Errorf("failed to copy report to clipboard: %w", err)
	}
	return nil
}
