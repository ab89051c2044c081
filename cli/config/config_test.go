package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scenewright/sceneqc/types"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sceneqc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func assertEqual(t *testing.T, field, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %q, want %q", field, got, want)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	yaml := `stage: /show/seq010/shot_qc.yaml
checks:
  - references
  - attributes
format: json

report:
  backend: s3
  bucket: qc-reports
  prefix: show/seq010
  region: us-east-1
  endpoint: https://example.com
  s3_path_style: true
`
	path := writeTemp(t, yaml)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assertEqual(t, "stage", cfg.Stage, "/show/seq010/shot_qc.yaml")
	assertEqual(t, "format", cfg.Format, "json")
	if len(cfg.Checks) != 2 {
		t.Errorf("checks: got %v, want two entries", cfg.Checks)
	}

	assertEqual(t, "report.backend", cfg.Report.Backend, "s3")
	assertEqual(t, "report.bucket", cfg.Report.Bucket, "qc-reports")
	assertEqual(t, "report.prefix", cfg.Report.Prefix, "show/seq010")
	assertEqual(t, "report.region", cfg.Report.Region, "us-east-1")
	assertEqual(t, "report.endpoint", cfg.Report.Endpoint, "https://example.com")
	if !cfg.Report.S3PathStyle {
		t.Error("expected report.s3_path_style=true")
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	path := writeTemp(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Stage != "" {
		t.Errorf("expected empty stage, got %q", cfg.Stage)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/sceneqc.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found message", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "{{invalid yaml")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_QC_BUCKET", "expanded-bucket")

	yaml := `report:
  bucket: ${TEST_QC_BUCKET}`
	path := writeTemp(t, yaml)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertEqual(t, "report.bucket", cfg.Report.Bucket, "expanded-bucket")
}

func TestCheckSet(t *testing.T) {
	tests := []struct {
		name    string
		checks  []string
		want    []types.Check
		wantErr bool
	}{
		{
			name:   "absent list enables everything",
			checks: nil,
			want:   types.CheckOrder,
		},
		{
			name:   "all keyword enables everything",
			checks: []string{"all"},
			want:   types.CheckOrder,
		},
		{
			name:   "explicit subset",
			checks: []string{"render", "references"},
			want:   []types.Check{types.CheckReferences, types.CheckRender},
		},
		{
			name:    "unknown name",
			checks:  []string{"lighting"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Checks: tt.checks}
			set, err := cfg.CheckSet()
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckSet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got := set.Ordered()
			if len(got) != len(tt.want) {
				t.Fatalf("CheckSet() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("CheckSet()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
