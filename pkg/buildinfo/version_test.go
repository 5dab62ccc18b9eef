package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFill(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	tests := []struct {
		name        string
		version     string
		main        string
		wantVersion string
	}{
		{"module version", "dev", "v0.3.0", "v0.3.0"},
		{"devel build", "dev", "(devel)", "dev"},
		{"ldflags win", "v1.0.0", "v0.3.0", "v1.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, "none", "unknown"
			fill(&debug.BuildInfo{
				Main: debug.Module{Version: tt.main},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				},
			})
			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
				t.Errorf("Commit, Date = %q, %q, want vcs settings", Commit, Date)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} ") || !strings.Contains(got, Version) {
		t.Errorf("Template() = %q", got)
	}
}
