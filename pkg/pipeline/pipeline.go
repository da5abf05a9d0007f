// Package pipeline provides the core conversion pipeline for procview.
//
// This package implements the complete check → load → validate →
// transform → write sequence that turns a taxonomy workbook into the
// two JSON artifacts. Centralizing it here keeps the CLI commands and
// the preview server consistent and avoids duplicating the staging
// logic.
//
// # Stages
//
//  1. CheckInput: the input file must exist
//  2. Load: read the workbook/CSV into an in-memory table
//  3. Validate: all six required columns must be present
//  4. Transform: build the hierarchy tree and the search index
//  5. Write: serialize both artifacts to disk
//
// A failure in any stage aborts the remaining stages. Writes are
// whole-document and non-transactional: if the second artifact fails
// after the first was written, the first stays on disk.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Rows, "rows converted")
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/taxonomy"
)

// Default paths for the no-argument invocation. Relative to the
// working directory, matching the tool's batch, manually-invoked
// usage.
const (
	// DefaultInputPath is the workbook read when no input is given.
	DefaultInputPath = "process-hierarchy.xlsx"

	// DefaultHierarchyPath is where the nested tree artifact goes.
	DefaultHierarchyPath = "hierarchy-data.json"

	// DefaultSearchPath is where the flat search index goes.
	DefaultSearchPath = "search-index.json"

	// DefaultStampTTL bounds how long a skip-unchanged stamp is
	// honored before a full re-run happens anyway.
	DefaultStampTTL = 30 * 24 * time.Hour
)

// Options contains all configuration for the conversion pipeline.
type Options struct {
	// InputPath is the workbook or CSV to read.
	InputPath string

	// Sheet names the worksheet to read; empty means the first one.
	Sheet string

	// HierarchyPath is the output path for the nested tree.
	HierarchyPath string

	// SearchPath is the output path for the search index.
	SearchPath string

	// Columns maps the six row fields to workbook headers. The zero
	// value means taxonomy.DefaultColumns.
	Columns taxonomy.Columns

	// Force re-runs the conversion even when the stamp says the
	// outputs are up to date.
	Force bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults fills unset fields with defaults and checks
// the option combination for consistency.
func (o *Options) ValidateAndSetDefaults() error {
	if o.InputPath == "" {
		o.InputPath = DefaultInputPath
	}
	if o.HierarchyPath == "" {
		o.HierarchyPath = DefaultHierarchyPath
	}
	if o.SearchPath == "" {
		o.SearchPath = DefaultSearchPath
	}
	if o.Columns == (taxonomy.Columns{}) {
		o.Columns = taxonomy.DefaultColumns()
	}
	for _, name := range o.Columns.Required() {
		if name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "column mapping has an empty header name")
		}
	}
	if o.HierarchyPath == o.SearchPath {
		return errors.New(errors.ErrCodeInvalidConfig, "hierarchy and search outputs must be different files, both set to %s", o.SearchPath)
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and stamps.
	RunID string

	// Root is the built hierarchy tree (nil when Skipped).
	Root *taxonomy.Node

	// Entries is the built search index (nil when Skipped).
	Entries []taxonomy.SearchEntry

	// Outputs lists the artifact paths written (or found up to date).
	Outputs []string

	// Skipped reports that the input was unchanged and both outputs
	// were already present, so no work was done.
	Skipped bool

	// Stats contains row counts and stage timings.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows         int
	L1Count      int
	L2Count      int
	L3Count      int
	IndexEntries int

	LoadTime      time.Duration
	TransformTime time.Duration
	WriteTime     time.Duration
}
