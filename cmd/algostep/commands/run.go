package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/config"
	"github.com/katalvlaran/algostep/engine"
	"github.com/katalvlaran/algostep/render"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/tui"
)

type runFlags struct {
	in          inputFlags
	configPath  string
	interval    time.Duration
	mode        string
	snapshots   bool
	metricsAddr string
}

// NewRunCommand returns the "run" command.
func NewRunCommand() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:       "run [algorithm]",
		Short:     "Play an algorithm step by step",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: catalog.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlgorithm(cmd, args, &f)
		},
	}
	f.in.register(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "config file (default ./algostep.yaml)")
	fl.DurationVarP(&f.interval, "interval", "i", 0, "delay between steps, 50ms to 1s")
	fl.StringVarP(&f.mode, "renderer", "r", "", "renderer: text, tui or none")
	fl.BoolVar(&f.snapshots, "snapshots", false, "print the container after each event (text renderer)")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	return cmd
}

// settings merges the config file with command-line overrides.
func (f *runFlags) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.interval != 0 {
		cfg.Engine.StepInterval = f.interval
	}
	if f.mode != "" {
		cfg.Renderer.Mode = f.mode
	}
	if cmd.Flags().Changed("snapshots") {
		cfg.Renderer.Snapshots = f.snapshots
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = f.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runAlgorithm(cmd *cobra.Command, args []string, f *runFlags) error {
	cfg, err := f.settings(cmd)
	if err != nil {
		return err
	}
	logger, err := cfg.Logging.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a, in, p, err := f.in.resolve(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	// done ends the metrics server once the run is over.
	runCtx, done := context.WithCancel(gctx)
	defer done()

	opts := []engine.Option{engine.WithConfig(cfg.Engine), engine.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		opts = append(opts, engine.WithMetrics(engine.NewMetrics(reg)))
		g.Go(func() error { return serveMetrics(runCtx, cfg.Metrics.Addr, reg, logger) })
	}

	out := cmd.OutOrStdout()
	if cfg.Renderer.Mode == config.ModeTUI {
		g.Go(func() error {
			defer done()
			return runTUI(runCtx, a, a.Describe(in), p, opts)
		})
		return g.Wait()
	}

	var r engine.Renderer = engine.Discard
	if cfg.Renderer.Mode == config.ModeText {
		fmt.Fprintf(out, "%s | %s\n", a.Name, a.Describe(in))
		r = render.NewText(out, render.WithColor(cfg.Renderer.Color), render.WithSnapshots(cfg.Renderer.Snapshots))
	}
	e, err := engine.New(r, opts...)
	if err != nil {
		return err
	}
	if err := e.Start(runCtx, p); err != nil {
		return err
	}
	g.Go(func() error {
		defer done()
		s, err := e.Wait(context.Background())
		if err != nil {
			return err
		}
		summarize(out, s)
		return nil
	})
	return g.Wait()
}

func summarize(w io.Writer, s engine.Session) {
	fmt.Fprintf(w, "%s %s after %d steps in %s (run %s)\n",
		s.Algorithm, s.State, s.Steps, time.Since(s.StartedAt).Round(time.Millisecond), s.ID)
}

// runTUI plays p inside a Bubble Tea program until the user quits.
func runTUI(ctx context.Context, a catalog.Algorithm, about string, p step.Producer, opts []engine.Option) error {
	var program *tea.Program
	bridge := tui.NewBridge(func(msg tea.Msg) { program.Send(msg) })
	// Log lines would tear the alternate screen.
	opts = append(opts, engine.WithLogger(slog.New(slog.DiscardHandler)))
	e, err := engine.New(bridge, opts...)
	if err != nil {
		return err
	}
	program = tea.NewProgram(tui.NewModel(ctx, e, a.Name, about), tea.WithContext(ctx), tea.WithAltScreen())

	if err := e.Start(ctx, p); err != nil {
		return err
	}
	_, err = program.Run()
	bridge.Close()
	if cerr := e.Cancel(); cerr != nil && !errors.Is(cerr, engine.ErrIdle) {
		return cerr
	}
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// serveMetrics exposes reg on addr until ctx is done.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("serving metrics", slog.String("addr", addr))

	select {
	case err := <-errc:
		return errors.Wrap(err, "metrics server")
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "metrics shutdown")
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
