package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"quotactl/internal/httpapi"
	"quotactl/internal/quota"
	"quotactl/pkg/types"
)

// reportHolder keeps the latest scan for the HTTP layer.
type reportHolder struct {
	report atomic.Pointer[types.AvailabilityReport]
}

func (h *reportHolder) Report() *types.AvailabilityReport { return h.report.Load() }
func (h *reportHolder) Ready() bool                       { return h.report.Load() != nil }

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the availability report over HTTP, re-scanning on an interval",
		Example: "  quotactl serve --addr :8080",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Serve.Addr = addr
			}
			httpapi.SetLogger(opts.log)
			httpapi.SetCORSOptions(cfg.Serve.CORSEnabled, cfg.Serve.CORSOrigins,
				[]string{"GET", "OPTIONS"}, []string{"Accept", "Content-Type"})

			holder := &reportHolder{}
			scanner := quota.NewScanner(opts.az(cfg), cfg.Catalog, opts.log)

			scanCtx, cancelScans := context.WithCancel(cmd.Context())
			defer cancelScans()
			go scanLoop(scanCtx, scanner, cfg.Regions, holder, opts, cfg.Serve.ScanIntervalSec)

			srv := &http.Server{Addr: cfg.Serve.Addr, Handler: httpapi.NewMux(holder)}
			errCh := make(chan error, 1)
			go func() {
				opts.log.Info().Str("addr", cfg.Serve.Addr).Msg("availability server listening")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			// Graceful shutdown (Ctrl+C / SIGTERM)
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case <-stop:
			case <-cmd.Context().Done():
			}
			cancelScans()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				opts.log.Warn().Err(err).Msg("graceful shutdown")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	return cmd
}

func scanLoop(ctx context.Context, scanner *quota.Scanner, regions []string, holder *reportHolder, opts *options, intervalSec int) {
	run := func() {
		report, err := scanner.Scan(ctx, regions)
		if err != nil {
			if ctx.Err() == nil {
				opts.log.Error().Err(err).Msg("scan failed")
			}
			return
		}
		holder.report.Store(report)
	}
	run()
	t := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
