package types

import (
	"regexp"
	"testing"
)

func TestVersion_Format(t *testing.T) {
	// Version should be a valid semver
	semverRegex := regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?$`)
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q is not a valid semver", Version)
	}
}

func TestReportSchemaVersion_MatchesVersion(t *testing.T) {
	// Per lockstep versioning, ReportSchemaVersion must equal Version
	if ReportSchemaVersion != Version {
		t.Errorf("ReportSchemaVersion %q != Version %q (lockstep versioning violated)", ReportSchemaVersion, Version)
	}
}
