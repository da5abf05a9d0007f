package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "procview.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
input = "exports/taxonomy.xlsx"
sheet = "Processes"
hierarchy = "web/hierarchy-data.json"
search = "web/search-index.json"

[columns]
l1 = "Process Area (L1) Name"
objective = "Process (L3) Objective"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.Input != "exports/taxonomy.xlsx" || cfg.Sheet != "Processes" {
		t.Errorf("cfg = %+v", cfg)
	}

	cols := cfg.columns()
	if cols.L1 != "Process Area (L1) Name" {
		t.Errorf("L1 = %q, want remapped header", cols.L1)
	}
	if cols.Objective != "Process (L3) Objective" {
		t.Errorf("Objective = %q, want remapped header", cols.Objective)
	}
	// Unset headers keep the defaults.
	if cols.L2 != "L2 Name" || cols.ITRelease != "IT Release" {
		t.Errorf("unset headers changed: %+v", cols)
	}
}

func TestLoadConfig_DefaultMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config must not be an error: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("cfg = %+v, want zero config", cfg)
	}
}

func TestLoadConfig_ExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadConfig_UnknownKeys(t *testing.T) {
	path := writeConfig(t, "inputt = \"typo.xlsx\"\n")

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %q, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "input = [unclosed\n")

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %q, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestConfigApply_FlagsWin(t *testing.T) {
	cfg := &Config{
		Input:     "from-config.xlsx",
		Sheet:     "ConfigSheet",
		Hierarchy: "config-hierarchy.json",
	}

	opts := pipeline.Options{InputPath: "from-flag.xlsx"}
	cfg.apply(&opts)

	if opts.InputPath != "from-flag.xlsx" {
		t.Errorf("InputPath = %q, flag value must win", opts.InputPath)
	}
	if opts.Sheet != "ConfigSheet" {
		t.Errorf("Sheet = %q, config must fill unset fields", opts.Sheet)
	}
	if opts.HierarchyPath != "config-hierarchy.json" {
		t.Errorf("HierarchyPath = %q", opts.HierarchyPath)
	}
	if opts.Columns.L1 != "L1 Name" {
		t.Errorf("Columns.L1 = %q, want default", opts.Columns.L1)
	}
}
