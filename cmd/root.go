package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimkit/internal/config"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/paths"
	"github.com/zjrosen/vimkit/internal/shared"
	"github.com/zjrosen/vimkit/internal/tracing"
	"github.com/zjrosen/vimkit/internal/ui/shared/widget"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

func init() {
	// Query the terminal background before any program starts so the OSC 11
	// reply cannot race the Bubble Tea input loop.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config

	traces     *tracing.Provider
	closeLog   func()
	clipboards = shared.NewClipboard
)

var rootCmd = &cobra.Command{
	Use:   "vimkit",
	Short: "Vim-style keyboard widgets for the terminal",
	Long: `vimkit demonstrates modal, vim-style list, table, tree and multimedia list
widgets plus an image folder gallery. Each subcommand opens one widget.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .vimkit/config.yaml, then ~/.config/vimkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write a debug log to debug.log")
	rootCmd.PersistentFlags().String("clipboard", "",
		"clipboard backend: auto, system, osc52 or memory")
	rootCmd.PersistentFlags().Bool("no-zebra", false,
		"disable alternating row backgrounds")
}

// setup loads the config, then starts logging, theming and tracing.
func setup(cmd *cobra.Command, _ []string) error {
	if debug || os.Getenv("VIMKIT_DEBUG") != "" {
		cleanup, err := log.InitWithTeaLog("debug.log", "vimkit")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		closeLog = cleanup
	}

	v := viper.New()
	_ = v.BindPFlag("clipboard", cmd.Flags().Lookup("clipboard"))
	path, _ := paths.ResolveConfig(cfgFile)
	loaded, err := config.Load(v, path)
	if err != nil {
		return err
	}
	cfg = loaded
	if noZebra, _ := cmd.Flags().GetBool("no-zebra"); noZebra {
		cfg.ZebraStripes = false
	}
	log.Info(log.CatConfig, "Config ready", "path", path, "clipboard", cfg.Clipboard)

	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	traces, err = tracing.NewProvider(cfg.Tracing.Provider())
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	return nil
}

func teardown(*cobra.Command, []string) error {
	var err error
	if traces != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = traces.Shutdown(ctx)
		traces = nil
	}
	if closeLog != nil {
		closeLog()
		closeLog = nil
	}
	return err
}

// widgetOptions builds the collaborators shared by every widget from the config.
func widgetOptions() widget.Options {
	opts := widget.Options{
		Clipboard:      clipboards(cfg.Clipboard, os.Stderr),
		Timeouts:       cfg.Chords.Timeouts(),
		TickInterval:   cfg.Chords.TickInterval,
		NoticeDuration: cfg.NoticeDuration,
	}
	if traces != nil {
		opts.Tracer = traces.Tracer()
	}
	return opts
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
