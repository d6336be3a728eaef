package updater

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"1.0.0", "1.0.1", true},
		{"v1.0.0", "v1.1.0", true},
		{"1.2.0", "1.2.0", false},
		{"2.0.0", "1.9.9", false},
	}

	for _, tt := range tests {
		got, err := IsNewer(tt.current, tt.latest)
		if err != nil {
			t.Errorf("IsNewer(%q, %q) error = %v", tt.current, tt.latest, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestIsNewer_DevBuild(t *testing.T) {
	if _, err := IsNewer("dev", "1.0.0"); err == nil {
		t.Error("expected error for non-semver current version")
	}
}

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"tag_name": "v1.2.3", "html_url": "https://example.com/r/v1.2.3"}`))
	}))
	defer srv.Close()

	ch := New("1.0.0", WithAPIBase(srv.URL), WithHTTPClient(srv.Client()))
	release, err := ch.LatestRelease()
	if err != nil {
		t.Fatalf("LatestRelease() error = %v", err)
	}
	if release.TagName != "v1.2.3" {
		t.Errorf("TagName = %q, want v1.2.3", release.TagName)
	}
}

func TestCheckAndPrintBanner_FromCache(t *testing.T) {
	dir := t.TempDir()
	cache := &checkCache{
		LatestVersion:   "v1.1.0",
		CurrentVersion:  "1.0.0",
		CheckedAt:       time.Now(),
		UpdateAvailable: true,
	}
	if err := saveCache(dir, cache); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	New("1.0.0").CheckAndPrintBanner(&buf, dir)

	if !strings.Contains(buf.String(), "Update available: 1.0.0 -> v1.1.0") {
		t.Errorf("banner output = %q", buf.String())
	}
}

func TestCheckAndPrintBanner_NoCacheIsSilent(t *testing.T) {
	var buf bytes.Buffer
	// Point the background refresh at a dead endpoint so the test never
	// reaches the real API.
	ch := New("1.0.0", WithAPIBase("http://127.0.0.1:0"))
	ch.CheckAndPrintBanner(&buf, t.TempDir())

	if got := buf.String(); got != "" {
		t.Errorf("expected no banner without cache, got %q", got)
	}
}
