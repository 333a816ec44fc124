// Package cli wires the cobra command tree: flags, config, logger
// lifecycle, and the handoff into the TUI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thoth-note/thoth/internal/config"
	"github.com/thoth-note/thoth/internal/todo"
	"github.com/thoth-note/thoth/internal/tui"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func NewRootCmd() *cobra.Command {
	var (
		configPath string
		themeFlag  string
		debug      bool

		cfg    config.Config
		logger *zap.Logger
	)

	root := &cobra.Command{
		Use:           "thoth",
		Short:         "thoth - a markdown todo list for the terminal",
		Long:          "Thoth Note: compose markdown drafts and commit them as list entries.\nState is session-only; nothing is written to disk.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}
			if themeFlag != "" {
				cfg.Theme = themeFlag
			}

			logger, err = buildLogger(cfg, debug)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := todo.NewApp()
			return tui.Run(app, cfg, logger)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/thoth/config.yaml)")
	root.PersistentFlags().StringVar(&themeFlag, "theme", "", "theme: classic, neon or mono")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to the log file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("thoth", Version)
		},
	})

	return root
}

// buildLogger sends logs to a file: stdout is the TUI's. Without --debug
// everything is discarded.
func buildLogger(cfg config.Config, debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	path := cfg.LogFile
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("user cache dir: %w", err)
		}
		path = filepath.Join(dir, "thoth", "debug.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}
