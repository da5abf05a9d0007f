package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/procview/procview/pkg/buildinfo"
	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address
	hierarchy  string // hierarchy artifact path
	search     string // search index artifact path
	configPath string // explicit procview.toml path
}

// serveCommand creates the serve command for previewing the artifacts.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON artifacts with a search API",
		Long: `Serve the JSON artifacts with a search API.

Loads hierarchy-data.json and search-index.json from the working directory
(or the paths from procview.toml) and serves them over HTTP:

  GET /hierarchy-data.json    the nested tree
  GET /search-index.json      the flat index
  GET /api/search?q=<term>    index entries whose name contains the term
  GET /api/version            build information
  GET /healthz                liveness probe

Run convert first; serve reads the artifacts from disk at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.hierarchy, "hierarchy", "", "hierarchy artifact path (default: hierarchy-data.json)")
	cmd.Flags().StringVar(&opts.search, "search", "", "search index artifact path (default: search-index.json)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: procview.toml if present)")

	return cmd
}

// runServe loads the artifacts and blocks serving HTTP until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, cliOpts serveOpts) error {
	cfg, err := loadConfig(cliOpts.configPath)
	if err != nil {
		return err
	}

	hierarchy := cliOpts.hierarchy
	if hierarchy == "" {
		hierarchy = cfg.Hierarchy
	}
	if hierarchy == "" {
		hierarchy = pipeline.DefaultHierarchyPath
	}
	search := cliOpts.search
	if search == "" {
		search = cfg.Search
	}
	if search == "" {
		search = pipeline.DefaultSearchPath
	}

	handler, err := newServeHandler(hierarchy, search)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cliOpts.addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger := loggerFromContext(ctx)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving artifacts",
			"addr", cliOpts.addr,
			"hierarchy", hierarchy,
			"search", search)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// indexEntry mirrors one search-index.json record. Details is kept raw:
// the server filters on names and passes everything else through.
type indexEntry struct {
	Name    string          `json:"name"`
	Level   string          `json:"level"`
	Parent  string          `json:"parent"`
	Details json.RawMessage `json:"details"`
}

// newServeHandler builds the chi router over the two artifact files.
// Both artifacts are loaded into memory once at startup; re-run serve
// after converting again.
func newServeHandler(hierarchyPath, searchPath string) (http.Handler, error) {
	hierarchy, err := os.ReadFile(hierarchyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "artifact %s not found, run convert first", hierarchyPath)
		}
		return nil, err
	}
	searchData, err := os.ReadFile(searchPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "artifact %s not found, run convert first", searchPath)
		}
		return nil, err
	}

	var entries []indexEntry
	if err := json.Unmarshal(searchData, &entries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", searchPath)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	serveJSON := func(data []byte) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write(data)
		}
	}
	r.Get("/hierarchy-data.json", serveJSON(hierarchy))
	r.Get("/search-index.json", serveJSON(searchData))

	r.Get("/api/search", func(w http.ResponseWriter, req *http.Request) {
		q := strings.ToLower(req.URL.Query().Get("q"))
		level := req.URL.Query().Get("level")

		matches := make([]indexEntry, 0)
		for _, e := range entries {
			if level != "" && e.Level != level {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(e.Name), q) {
				continue
			}
			matches = append(matches, e)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(matches)
	})

	r.Get("/api/version", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, buildinfo.String())
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r, nil
}
