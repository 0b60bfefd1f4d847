package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phsym/console-slog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/duplex-dev/duplex/pkg/bridge"
	"github.com/duplex-dev/duplex/pkg/duplex"
	"github.com/duplex-dev/duplex/pkg/metrics"
	"github.com/duplex-dev/duplex/pkg/persist"
	"github.com/duplex-dev/duplex/pkg/uievent"
)

// demoState is the durable state of the demo emitter.
type demoState struct {
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func serveCmd() *cobra.Command {
	var (
		addr    string
		tick    time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(addr, tick, verbose)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8090", "listen address")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "counter tick interval")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func serve(addr string, tick time.Duration, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	hook := metrics.New()
	store := persist.NewMemoryStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, ok, err := persist.Restore[demoState](ctx, store, "demo")
	if err != nil {
		return err
	}
	if !ok {
		state = demoState{UpdatedAt: time.Now()}
	}

	em := duplex.NewEmitter[demoState, uievent.Event](state,
		duplex.WithName("demo"),
		duplex.WithLogger(logger),
		duplex.WithHook(hook))
	defer em.Dispose()

	snap := persist.Attach[demoState](em, store, "demo", persist.WithLogger(logger))
	defer snap.Close()

	// Drive the demo: bump the counter every tick, toast every tenth bump.
	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				next := demoState{Count: em.State().Count + 1, UpdatedAt: time.Now()}
				em.SetState(next)
				if next.Count%10 == 0 {
					em.EmitEffect(uievent.Info(fmt.Sprintf("counter reached %d", next.Count)))
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/state", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(em.State())
	})

	r.Post("/toast", func(w http.ResponseWriter, req *http.Request) {
		msg := req.URL.Query().Get("message")
		if msg == "" {
			http.Error(w, "message query parameter required", http.StatusBadRequest)
			return
		}
		em.EmitEffect(uievent.Success(msg))
		w.WriteHeader(http.StatusAccepted)
	})

	r.Get("/ws", bridge.Handler[uievent.Event](em, bridge.UIEvents,
		bridge.WithLogger(logger)).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("demo server listening", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
