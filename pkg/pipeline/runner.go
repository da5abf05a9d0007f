package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/procview/procview/pkg/cache"
	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/export"
	"github.com/procview/procview/pkg/table"
	"github.com/procview/procview/pkg/taxonomy"
)

// Runner encapsulates pipeline execution with skip-unchanged stamping.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If cache is nil, a NullCache is used (stamping disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs the complete check → load → validate → transform →
// write sequence.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if !opts.validated {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: CheckInput
	if _, err := os.Stat(opts.InputPath); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "input file %s not found", opts.InputPath)
	}

	inputHash, err := cache.HashFile(opts.InputPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash %s", opts.InputPath)
	}
	stampKey := r.stampKey(opts)

	if !opts.Force && r.upToDate(ctx, stampKey, inputHash, opts) {
		logger.Info("input unchanged, outputs up to date",
			"input", opts.InputPath)
		result.Skipped = true
		result.Outputs = []string{opts.HierarchyPath, opts.SearchPath}
		return result, nil
	}

	// Stage 2: Load
	loadStart := time.Now()
	tbl, err := table.Read(opts.InputPath, opts.Sheet)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	logger.Info("loaded input",
		"path", opts.InputPath,
		"rows", len(tbl.Rows),
		"columns", len(tbl.Columns),
		"duration", result.Stats.LoadTime)

	// Stage 3: Validate + Stage 4: Transform
	transformStart := time.Now()
	rows, err := taxonomy.Rows(tbl, opts.Columns)
	if err != nil {
		return nil, err
	}
	result.Root = taxonomy.BuildHierarchy(rows)
	result.Entries = taxonomy.BuildSearchIndex(rows)
	result.Stats.TransformTime = time.Since(transformStart)
	result.Stats.Rows = len(rows)
	result.Stats.L1Count = result.Root.Count(taxonomy.LevelL1)
	result.Stats.L2Count = result.Root.Count(taxonomy.LevelL2)
	result.Stats.L3Count = result.Root.Count(taxonomy.LevelL3)
	result.Stats.IndexEntries = len(result.Entries)

	logger.Info("built taxonomy",
		"l1", result.Stats.L1Count,
		"l2", result.Stats.L2Count,
		"l3", result.Stats.L3Count,
		"index_entries", result.Stats.IndexEntries,
		"duration", result.Stats.TransformTime)

	// Stage 5: Write
	writeStart := time.Now()
	if err := export.ExportHierarchy(result.Root, opts.HierarchyPath); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write hierarchy")
	}
	if err := export.ExportSearchIndex(result.Entries, opts.SearchPath); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write search index")
	}
	result.Stats.WriteTime = time.Since(writeStart)
	result.Outputs = []string{opts.HierarchyPath, opts.SearchPath}

	logger.Info("wrote artifacts",
		"hierarchy", opts.HierarchyPath,
		"search", opts.SearchPath,
		"duration", result.Stats.WriteTime)

	r.stamp(ctx, stampKey, inputHash, result, logger)

	return result, nil
}

// upToDate reports whether a prior run stamped the same input hash and
// all of its outputs still exist.
func (r *Runner) upToDate(ctx context.Context, key, inputHash string, opts Options) bool {
	stamp, ok, err := r.Cache.Get(ctx, key)
	if err != nil || !ok || stamp.InputHash != inputHash {
		return false
	}
	for _, out := range stamp.Outputs {
		if _, err := os.Stat(out); err != nil {
			return false
		}
	}
	return true
}

// stamp records a successful run. Stamping failures are logged, not
// fatal: the conversion already succeeded.
func (r *Runner) stamp(ctx context.Context, key, inputHash string, result *Result, logger *log.Logger) {
	s := cache.Stamp{
		InputHash: inputHash,
		Outputs:   result.Outputs,
		RunID:     result.RunID,
		CreatedAt: time.Now(),
	}
	if err := r.Cache.Set(ctx, key, s, DefaultStampTTL); err != nil {
		logger.Debug("stamping failed", "error", err)
	}
}

// stampKey identifies a run configuration: same input and outputs but
// a different sheet or column mapping must stamp independently.
func (r *Runner) stampKey(opts Options) string {
	parts := []string{opts.InputPath, opts.Sheet, opts.HierarchyPath, opts.SearchPath}
	parts = append(parts, opts.Columns.Required()...)
	return cache.Key(parts...)
}
