package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-tree/pkg/backend/canvas"
	"github.com/willbeason/fractal-tree/pkg/backend/desktop"
	"github.com/willbeason/fractal-tree/pkg/backend/terminal"
	"github.com/willbeason/fractal-tree/pkg/config"
	"github.com/willbeason/fractal-tree/pkg/simulation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type options struct {
	configPath string
	backend    string
	verbose    bool

	logger *zap.Logger
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw a fractal tree whose spread follows the scroll wheel",
		Args:  cobra.ExactArgs(0),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file of settings")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every frame")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "where to draw: desktop or terminal")

	cmd.AddCommand(snapshotCmd(opts))

	return cmd
}

func snapshotCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write the initial tree to a PNG without opening a window",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			if out == "" {
				out = fmt.Sprintf("out-%s.png", time.Now().Format("20060102150405"))
			}
			return snapshot(opts, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "PNG file to write")

	return cmd
}

func (opts *options) initLogger() error {
	cfg := zap.NewProductionConfig()
	if opts.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	opts.logger = logger
	return nil
}

func (opts *options) loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	if opts.backend != "" {
		cfg.Backend = opts.backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func openWindow(backend string) (simulation.Window, error) {
	if backend == config.BackendTerminal {
		t, err := terminal.New(simulation.DefaultWidth, simulation.DefaultHeight)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	w, err := desktop.New(simulation.DefaultWidth, simulation.DefaultHeight, simulation.Title)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	window, err := openWindow(cfg.Backend)
	if err != nil {
		opts.logger.Error("Could not open window", zap.String("backend", cfg.Backend), zap.Error(err))
		return fmt.Errorf("opening %s window: %w", cfg.Backend, err)
	}
	defer func() {
		if err := window.Close(); err != nil {
			opts.logger.Warn("Closing window", zap.Error(err))
		}
	}()

	opts.logger.Debug("Opened window", zap.String("backend", cfg.Backend))

	sim := simulation.New(window, simulation.SystemClock{}, cfg, opts.logger)
	return sim.Run(cmd.Context())
}

func snapshot(opts *options, out string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	c := canvas.New(simulation.DefaultWidth, simulation.DefaultHeight)
	sim := simulation.New(c, simulation.SystemClock{}, cfg, opts.logger)

	err = sim.Render()
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	err = c.WritePNG(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	opts.logger.Info("Wrote snapshot", zap.String("path", out), zap.Int("segments", c.Segments))
	return nil
}

// interruptible is cancelled when parent is or when the process is asked to
// stop.
func interruptible(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func main() {
	ctx, stop := interruptible(context.Background())

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
