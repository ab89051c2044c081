package report

import (
	"context"
	"os"
	"path/filepath"

	"github.com/scenewright/sceneqc/types"
)

// FileSink writes report frames beneath a base directory using the
// partitioned key layout. Suitable for farm-local report drops.
type FileSink struct {
	base string
}

// Verify FileSink implements Sink.
var _ Sink = (*FileSink)(nil)

// NewFileSink creates a sink rooted at base. The directory is created on
// first write, not here, so constructing a sink never touches disk.
func NewFileSink(base string) *FileSink {
	return &FileSink{base: base}
}

// Write implements Sink.
func (s *FileSink) Write(ctx context.Context, rep *types.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	frame, err := EncodeFrame(rep)
	if err != nil {
		return err
	}

	path := filepath.Join(s.base, filepath.FromSlash(ObjectKey(rep)))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return WrapWriteError(err, path)
	}
	if err := os.WriteFile(path, frame, 0o644); err != nil {
		return WrapWriteError(err, path)
	}
	return nil
}

// Close implements Sink. File sinks hold no resources.
func (s *FileSink) Close() error { return nil }
