package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version must have a default value")
	}
	// The default carries color escapes; the digits must still be there.
	for _, part := range []string{"0", "1", "-dev"} {
		if !strings.Contains(Version, part) {
			t.Errorf("Version %q missing %q", Version, part)
		}
	}
}

func TestBuildMetadataOverride(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	GitCommit = "abc123"
	BuildDate = "2026-01-15T10:30:00Z"
	if GitCommit != "abc123" || BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("ldflags-style override failed: %q %q", GitCommit, BuildDate)
	}
}
