package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/pipeline"
	"github.com/procview/procview/pkg/taxonomy"
)

// defaultConfigFile is looked up in the working directory when no
// --config flag is given.
const defaultConfigFile = "procview.toml"

// Config is the optional TOML project file. All fields are optional;
// command-line flags take precedence over the file, and the file takes
// precedence over built-in defaults.
//
//	input = "exports/taxonomy.xlsx"
//	sheet = "Processes"
//	hierarchy = "web/hierarchy-data.json"
//	search = "web/search-index.json"
//
//	[columns]
//	l1 = "Process Area (L1) Name"
//	l2 = "Process Group (L2) Name"
//	l3 = "Process (L3) Name"
//	objective = "Process (L3) Objective"
//	use_case = "Use Case"
//	it_release = "IT Release"
type Config struct {
	Input     string        `toml:"input"`
	Sheet     string        `toml:"sheet"`
	Hierarchy string        `toml:"hierarchy"`
	Search    string        `toml:"search"`
	Columns   ColumnsConfig `toml:"columns"`
}

// ColumnsConfig remaps the workbook headers. Unset fields keep the
// default header names.
type ColumnsConfig struct {
	L1        string `toml:"l1"`
	L2        string `toml:"l2"`
	L3        string `toml:"l3"`
	Objective string `toml:"objective"`
	UseCase   string `toml:"use_case"`
	ITRelease string `toml:"it_release"`
}

// loadConfig reads a TOML config file. When path is empty it tries
// procview.toml in the working directory and returns an empty config
// if the file does not exist; an explicit path must exist.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigFile
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %v", path, undecoded)
	}
	return &cfg, nil
}

// apply fills unset pipeline options from the config file.
func (cfg *Config) apply(opts *pipeline.Options) {
	if opts.InputPath == "" {
		opts.InputPath = cfg.Input
	}
	if opts.Sheet == "" {
		opts.Sheet = cfg.Sheet
	}
	if opts.HierarchyPath == "" {
		opts.HierarchyPath = cfg.Hierarchy
	}
	if opts.SearchPath == "" {
		opts.SearchPath = cfg.Search
	}
	if opts.Columns == (taxonomy.Columns{}) {
		opts.Columns = cfg.columns()
	}
}

// columns converts the TOML mapping into a full taxonomy.Columns,
// falling back to the defaults for unset headers.
func (cfg *Config) columns() taxonomy.Columns {
	cols := taxonomy.DefaultColumns()
	if cfg.Columns.L1 != "" {
		cols.L1 = cfg.Columns.L1
	}
	if cfg.Columns.L2 != "" {
		cols.L2 = cfg.Columns.L2
	}
	if cfg.Columns.L3 != "" {
		cols.L3 = cfg.Columns.L3
	}
	if cfg.Columns.Objective != "" {
		cols.Objective = cfg.Columns.Objective
	}
	if cfg.Columns.UseCase != "" {
		cols.UseCase = cfg.Columns.UseCase
	}
	if cfg.Columns.ITRelease != "" {
		cols.ITRelease = cfg.Columns.ITRelease
	}
	return cols
}
