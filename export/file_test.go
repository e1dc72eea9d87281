package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	ts := time.UnixMilli(1709820309123)
	assert.Equal(t, "troubleshooting-report-1709820309123.txt", FileName(ts))
}

func TestToFile(t *testing.T) {
	ts := time.UnixMilli(1709820309123)
	s := &svc{now: func() time.Time { return ts }, create: createExclusive}
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := s.ToFile(context.Background(), dir, "AI Troubleshooting Agent Report")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "troubleshooting-report-1709820309123.txt"), path)

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AI Troubleshooting Agent Report", string(bs))

	// same millisecond must not overwrite an existing report
	_, err = s.ToFile(context.Background(), dir, "second")
	assert.Error(t, err)
}

type failingFile struct {
	f        *os.File
	writeErr error
	closeErr error
}

func (ff *failingFile) Write(p []byte) (int, error) {
	if ff.writeErr != nil {
		n, _ := ff.f.Write(p[:len(p)/2])
		return n, ff.writeErr
	}
	return ff.f.Write(p)
}

func (ff *failingFile) Close() error {
	if err := ff.f.Close(); err != nil {
		return err
	}
	return ff.closeErr
}

func TestToFileRemovesPartialReport(t *testing.T) {
	ts := time.UnixMilli(1709820309123)
	diskFull := errors.New("no space left on device")

	testCases := []struct {
		name string
		ff   failingFile
	}{
		{name: "write fails", ff: failingFile{writeErr: diskFull}},
		{name: "close fails", ff: failingFile{closeErr: diskFull}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			ff := tc.ff
			s := &svc{
				now: func() time.Time { return ts },
				create: func(path string) (io.WriteCloser, error) {
					f, err := os.Create(path)
					if err != nil {
						return nil, err
					}
					ff.f = f
					return &ff, nil
				},
			}

			_, err := s.ToFile(context.Background(), dir, "AI Troubleshooting Agent Report")
			assert.ErrorIs(t, err, diskFull)

			_, statErr := os.Stat(filepath.Join(dir, FileName(ts)))
			assert.True(t, os.IsNotExist(statErr), "partial report must be removed")
		})
	}
}

func TestToClipboard(t *testing.T) {
	if clipboard.Unsupported {
		s := &svc{writeClip: func(string) error { return nil }}
		assert.ErrorIs(t, s.ToClipboard(context.Background(), "r"), ErrClipboardUnsupported)
		return
	}

	var copied string
	s := &svc{writeClip: func(text string) error {
		copied = text
		return nil
	}}
	require.NoError(t, s.ToClipboard(context.Background(), "report"))
	assert.Equal(t, "report", copied)

	boom := errors.New("boom")
	s.writeClip = func(string) error { return boom }
	assert.ErrorIs(t, s.ToClipboard(context.Background(), "report"), boom)
}
