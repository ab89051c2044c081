package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scenewright/sceneqc/types"
)

// Sink persists encoded scan reports. Implementations deliver to local
// files or S3; the scanner itself never touches a sink, the presentation
// layer wires one in when report persistence is requested.
type Sink interface {
	// Write persists one report.
	Write(ctx context.Context, rep *types.Report) error

	// Close releases sink resources.
	Close() error
}

// DeriveDay computes the partition day from the scan start time.
// Format: YYYY-MM-DD in UTC.
func DeriveDay(start time.Time) string {
	return start.UTC().Format("2006-01-02")
}

// ObjectKey computes the partitioned key for one report:
// reports/day=<day>/stage=<stage>/<scan_id>.qcr
// The stage identifier is sanitized for use as a path segment.
func ObjectKey(rep *types.Report) string {
	day := DeriveDay(parseStarted(rep.StartedAt))
	return fmt.Sprintf("reports/day=%s/stage=%s/%s.qcr", day, sanitizeSegment(rep.Stage), rep.ScanID)
}

func parseStarted(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now()
	}
	return t
}

// sanitizeSegment makes an identifier safe as a single path segment.
func sanitizeSegment(s string) string {
	if s == "" {
		return "unknown"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_", "..", "_")
	return replacer.Replace(s)
}
