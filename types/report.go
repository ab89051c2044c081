package types

// ReportSchemaVersion is the scan report schema version. Lockstep with
// Version; downstream pipeline consumers key on this field.
const ReportSchemaVersion = Version

// Report is the machine-readable outcome of one scan. Fields carry both
// msgpack tags (frame encoding for pipeline ingestion) and json tags
// (CLI rendering).
type Report struct {
	// SchemaVersion is the report schema version.
	SchemaVersion string `json:"schema_version" msgpack:"schema_version"`
	// ScanID is a unique identifier for this scan.
	ScanID string `json:"scan_id" msgpack:"scan_id"`
	// Stage is the identifier of the scanned stage's root document.
	Stage string `json:"stage" msgpack:"stage"`
	// StartedAt is the scan start timestamp in ISO 8601 UTC format.
	StartedAt string `json:"started_at" msgpack:"started_at"`
	// ChecksRun lists the validators that executed, in execution order.
	// Empty means every check was disabled and validation was skipped,
	// which is distinct from a scan that ran and found nothing.
	ChecksRun []Check `json:"checks_run" msgpack:"checks_run"`
	// Errors is the ordered error sequence, insertion order preserved.
	Errors []ValidationError `json:"errors" msgpack:"errors"`
	// Summary carries scan counters for observability.
	Summary ScanSummary `json:"summary" msgpack:"summary"`
}

// ScanSummary aggregates scan counters per report.
type ScanSummary struct {
	// PrimsVisited is the number of prim pre-order visits across validators.
	PrimsVisited int64 `json:"prims_visited" msgpack:"prims_visited"`
	// AttrsChecked is the number of attributes that entered cardinality checking.
	AttrsChecked int64 `json:"attrs_checked" msgpack:"attrs_checked"`
	// AttrsSkipped is the number of attributes skipped as unclassified or unreadable.
	AttrsSkipped int64 `json:"attrs_skipped" msgpack:"attrs_skipped"`
	// ErrorsByKind maps error kinds to detection counts.
	ErrorsByKind map[ErrorKind]int64 `json:"errors_by_kind" msgpack:"errors_by_kind"`
}

// Skipped reports whether validation was skipped because every check was
// disabled.
func (r *Report) Skipped() bool { return len(r.ChecksRun) == 0 }

// Passed reports whether the scan ran at least one check and found nothing.
func (r *Report) Passed() bool { return !r.Skipped() && len(r.Errors) == 0 }

// Messages renders every error in detection order.
func (r *Report) Messages() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Message()
	}
	return out
}
