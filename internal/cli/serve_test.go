package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/export"
	"github.com/procview/procview/pkg/taxonomy"
)

// writeArtifacts converts a small fixed taxonomy and returns the two
// artifact paths.
func writeArtifacts(t *testing.T) (string, string) {
	t.Helper()
	rows := []taxonomy.Row{
		{L1: "Plan", L2: "Demand", L3: "Forecast", Objective: "o1", UseCase: "u1", ITRelease: "r1"},
		{L1: "Plan", L2: "Demand", L3: "Consensus", Objective: "o2", UseCase: "u2", ITRelease: "r2"},
		{L1: "Source", L2: "Procure", L3: "Order", Objective: "o3", UseCase: "u3", ITRelease: "r3"},
	}

	dir := t.TempDir()
	hierarchy := filepath.Join(dir, "hierarchy-data.json")
	search := filepath.Join(dir, "search-index.json")
	if err := export.ExportHierarchy(taxonomy.BuildHierarchy(rows), hierarchy); err != nil {
		t.Fatal(err)
	}
	if err := export.ExportSearchIndex(taxonomy.BuildSearchIndex(rows), search); err != nil {
		t.Fatal(err)
	}
	return hierarchy, search
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	hierarchy, search := writeArtifacts(t)
	handler, err := newServeHandler(hierarchy, search)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func getEntries(t *testing.T, url string) []indexEntry {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var entries []indexEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	return entries
}

func TestServeArtifacts(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/hierarchy-data.json", "/search-index.json"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d", path, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("GET %s content type = %q", path, ct)
		}
	}
}

func TestServeSearch(t *testing.T) {
	srv := newTestServer(t)

	t.Run("substring match", func(t *testing.T) {
		entries := getEntries(t, srv.URL+"/api/search?q=fore")
		if len(entries) != 1 || entries[0].Name != "Forecast" {
			t.Errorf("entries = %+v", entries)
		}
		if entries[0].Parent != "Demand" {
			t.Errorf("parent = %q, want Demand", entries[0].Parent)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		entries := getEntries(t, srv.URL+"/api/search?q=PLAN")
		if len(entries) != 1 || entries[0].Level != "L1" {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("level filter", func(t *testing.T) {
		entries := getEntries(t, srv.URL+"/api/search?level=L3")
		if len(entries) != 3 {
			t.Errorf("got %d L3 entries, want 3", len(entries))
		}
	})

	t.Run("no match is empty array", func(t *testing.T) {
		entries := getEntries(t, srv.URL+"/api/search?q=nomatch")
		if entries == nil || len(entries) != 0 {
			t.Errorf("entries = %v, want empty non-nil slice", entries)
		}
	})

	t.Run("no query returns everything", func(t *testing.T) {
		entries := getEntries(t, srv.URL+"/api/search")
		if len(entries) != 7 {
			t.Errorf("got %d entries, want 7", len(entries))
		}
	})
}

func TestServeVersion(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/version")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "version:") {
		t.Errorf("body = %q, want build information", body)
	}
}

func TestServeHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestServeHandler_MissingArtifacts(t *testing.T) {
	dir := t.TempDir()
	_, err := newServeHandler(filepath.Join(dir, "absent.json"), filepath.Join(dir, "also-absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestServeHandler_CorruptIndex(t *testing.T) {
	hierarchy, search := writeArtifacts(t)
	if err := os.WriteFile(search, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := newServeHandler(hierarchy, search)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %q, want INVALID_INPUT", errors.GetCode(err))
	}
}
