package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/hexforge/hexforge/pkg/cache"
	"github.com/hexforge/hexforge/pkg/errors"
	"github.com/hexforge/hexforge/pkg/gridio"
	"github.com/hexforge/hexforge/pkg/hex"
	"github.com/hexforge/hexforge/pkg/layout"
	"github.com/hexforge/hexforge/pkg/render"
)

func newServeCmd() *cobra.Command {
	var flagAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve grid building over HTTP",
		Long: `Serve starts an HTTP server that builds grids on demand.

  GET /v1/grid?shape=hexagon&orientation=pointy&radius=10&width=5&height=5
  GET /healthz

Grids are returned as JSON by default; pass format=svg for an SVG body.
Invalid build parameters yield a 400 with the error code and message.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}
			if flagAddr == "" {
				flagAddr = cfg.Serve.Addr
			}
			store, err := openCache(ctx, cfg.Cache)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := &http.Server{
				Addr:              flagAddr,
				Handler:           newRouter(ctx, store, cfg),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			logger.Info("listening", "addr", flagAddr)

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				logger.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default :8080)")

	return cmd
}

// newRouter builds the HTTP API. baseCtx carries the process logger so
// request handlers log through the same sink as the rest of the command.
func newRouter(baseCtx context.Context, store cache.Cache, cfg Config) http.Handler {
	logger := loggerFromContext(baseCtx)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), logger)))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/v1/grid", handleGrid(store, cfg))

	return r
}

// gridErrorStatus maps a build error to an HTTP status code. Validation
// failures are the client's fault, everything else is ours.
func gridErrorStatus(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidSize, errors.ErrCodeInvalidShape,
		errors.ErrCodeInvalidOrientation, errors.ErrCodeInvalidSpec:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleGrid(store cache.Cache, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		logger := loggerFromContext(ctx)
		q := req.URL.Query()

		shape, err := layout.ParseShape(q.Get("shape"))
		if err != nil {
			writeError(w, err)
			return
		}
		orientation := q.Get("orientation")
		if orientation == "" {
			orientation = cfg.Defaults.Orientation
		}
		o, err := hex.ParseOrientation(orientation)
		if err != nil {
			writeError(w, err)
			return
		}
		radius := cfg.Defaults.Radius
		if v := q.Get("radius"); v != "" {
			radius, err = strconv.ParseFloat(v, 64)
			if err != nil {
				writeError(w, errors.New(errors.ErrCodeInvalidSpec, "invalid radius %q", v))
				return
			}
		}
		width, err := intParam(q.Get("width"))
		if err != nil {
			writeError(w, err)
			return
		}
		height, err := intParam(q.Get("height"))
		if err != nil {
			writeError(w, err)
			return
		}

		ctl, hit, err := buildCached(ctx, store, cfg.Cache.cacheTTL(), shape, o, radius, width, height)
		if err != nil {
			writeError(w, err)
			return
		}
		logger.Debug("grid served", "shape", shape, "width", width, "height", height, "cached", hit)

		if q.Get("format") == "svg" {
			w.Header().Set("Content-Type", "image/svg+xml")
			if err := render.SVG(w, ctl, render.DefaultSVGOptions()); err != nil {
				logger.Error("svg render failed", "err", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, gridio.FromControl(ctl))
	}
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidSpec, "invalid dimension %q", v)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, gridErrorStatus(err), map[string]string{
		"code":  string(errors.GetCode(err)),
		"error": errors.UserMessage(err),
	})
}
