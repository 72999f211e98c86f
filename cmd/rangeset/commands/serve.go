package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/baratali/rangeset/pkg/rangeset"
)

const serveArgCount = 1

const metricsPollInterval = 5 * time.Second

// rangeSetMetrics is one gauge plus three counters, scoped down to what a
// single in-memory range set can report: no persistence, no cross-process
// state.
type rangeSetMetrics struct {
	storedRanges prometheus.Gauge
	addTotal     prometheus.Counter
	removeTotal  prometheus.Counter
	queryTotal   prometheus.Counter
}

func newRangeSetMetrics(registry *prometheus.Registry) *rangeSetMetrics {
	factory := promauto.With(registry)

	return &rangeSetMetrics{
		storedRanges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rangeset_stored_ranges",
			Help: "Number of disjoint ranges currently stored in the demo set.",
		}),
		addTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rangeset_add_total",
			Help: "Number of add operations replayed into the demo set.",
		}),
		removeTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rangeset_remove_total",
			Help: "Number of remove operations replayed into the demo set.",
		}),
		queryTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rangeset_query_total",
			Help: "Number of /ranges reads served since startup.",
		}),
	}
}

// NewServeCommand creates the serve subcommand: build a range set from a
// file once at startup, then expose its shape over HTTP until interrupted.
func NewServeCommand(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <operations-file>",
		Short: "Expose Prometheus metrics for an in-memory range set",
		Args:  cobra.ExactArgs(serveArgCount),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}

			if addr == "" {
				addr = cfg.Serve.ListenAddr
			}

			return runServe(cobraCmd.Context(), args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config: serve.listen_addr)")

	return cmd
}

func runServe(ctx context.Context, path, addr string) error {
	ops, loadErr := LoadOperations(path)
	if loadErr != nil {
		return loadErr
	}

	set, applyErr := Apply(ops)
	if applyErr != nil {
		return applyErr
	}

	registry := prometheus.NewRegistry()
	metrics := newRangeSetMetrics(registry)
	countAppliedOps(metrics, ops)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/ranges", func(w http.ResponseWriter, _ *http.Request) {
		metrics.queryTotal.Inc()
		fmt.Fprintln(w, RenderRanges(set.AsRanges()))
	})

	stop := pollStoredRanges(ctx, metrics, set)
	defer stop()

	server := &http.Server{Addr: addr, Handler: mux}

	fmt.Printf("serving on %s (/metrics, /ranges)\n", addr)

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func countAppliedOps(metrics *rangeSetMetrics, ops []Operation) {
	for _, op := range ops {
		switch op.Op {
		case "add":
			metrics.addTotal.Inc()
		case "remove":
			metrics.removeTotal.Inc()
		}
	}
}

// pollStoredRanges periodically refreshes the stored-range gauge, since the
// demo set never mutates again after startup but a gauge read on every
// /metrics scrape would otherwise require a lock this package doesn't need
// for any other purpose.
func pollStoredRanges(ctx context.Context, metrics *rangeSetMetrics, set *rangeset.TreeRangeSet[float64]) func() {
	ticker := time.NewTicker(metricsPollInterval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()

		metrics.storedRanges.Set(float64(len(set.AsRanges())))

		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				metrics.storedRanges.Set(float64(len(set.AsRanges())))
			}
		}
	}()

	return func() { close(done) }
}
