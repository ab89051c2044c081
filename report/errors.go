package report

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for sink failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrPermissionDenied indicates a permission/access failure (EACCES, 403).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound indicates the target path/resource does not exist (ENOENT, 404).
	ErrNotFound = errors.New("not found")

	// ErrDiskFull indicates storage is out of space (ENOSPC).
	ErrDiskFull = errors.New("no space left on device")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")

	// ErrAuth indicates authentication failure (no credentials, expired token).
	ErrAuth = errors.New("authentication failed")

	// ErrNetwork indicates a network-level failure (connection refused, DNS).
	ErrNetwork = errors.New("network error")
)

// SinkError wraps an underlying error with sink classification.
// It preserves the original error in the chain for inspection via errors.As.
type SinkError struct {
	// Kind is the sentinel error for classification (e.g., ErrNotFound).
	Kind error
	// Op is the operation that failed (e.g., "write", "init").
	Op string
	// Path is the sink path involved, if any.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *SinkError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chain traversal.
func (e *SinkError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *SinkError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// WrapWriteError classifies and wraps a write operation error.
// Returns nil if err is nil.
func WrapWriteError(err error, path string) error {
	if err == nil {
		return nil
	}
	return &SinkError{Kind: classifyError(err), Op: "write", Path: path, Err: err}
}

// WrapInitError classifies and wraps a sink initialization error.
// Returns nil if err is nil.
func WrapInitError(err error, path string) error {
	if err == nil {
		return nil
	}
	return &SinkError{Kind: classifyError(err), Op: "init", Path: path, Err: err}
}

// classifyError determines the appropriate sentinel error for the given
// error. Classification is by typed assertion first, then message patterns.
func classifyError(err error) error {
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return ErrTimeout
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case containsAny(errStr, "permission denied", "eacces", "accessdenied", "forbidden", "403"):
		return ErrPermissionDenied
	case containsAny(errStr, "no such file", "does not exist", "not found", "enoent", "404", "nosuchkey", "nosuchbucket"):
		return ErrNotFound
	case containsAny(errStr, "no space left", "disk full", "enospc", "quota exceeded"):
		return ErrDiskFull
	case containsAny(errStr, "timeout", "timed out", "deadline exceeded"):
		return ErrTimeout
	case containsAny(errStr, "nocredentialproviders", "credentials", "invalidaccesskeyid",
		"signaturedoesnotmatch", "expiredtoken", "401", "unauthorized"):
		return ErrAuth
	case containsAny(errStr, "connection refused", "no route to host", "network unreachable",
		"dns", "dial tcp", "i/o timeout"):
		return ErrNetwork
	default:
		return errors.New("sink error")
	}
}

// containsAny checks if s contains any of the substrings. s must already be
// lowercased.
func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
