package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	mcuschema "github.com/reoring/mcuschema"
	"github.com/reoring/mcuschema/internal/config"
	"github.com/reoring/mcuschema/logger"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v          *viper.Viper
	cfgFile    string
	verbose    bool
	permissive bool

	cfg config.Config
	log logger.Logger
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd assembles the mcuimport command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "mcuimport",
		Short: "mcuimport - STM32 microcontroller description importer",
		Long: `mcuimport reads STM32 microcontroller description files (st-open-pins
mcu/*.xml), builds typed records from them and reports every record it built.

Unknown attributes and elements fail the import unless --permissive is set.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Path to config file (default ./mcuimport.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug diagnostics")
	pf.String("log-level", "info", "Log level: debug, info, warn, error, silent")
	pf.BoolVar(&a.permissive, "permissive", false, "Skip unknown fields with a warning instead of failing")
	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))

	root.AddCommand(
		a.scanCmd(),
		a.showCmd(),
		a.buildCmd(),
		a.schemaCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "mcuimport v%s\n", mcuschema.Version)
			},
		},
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.permissive {
		a.v.Set(config.KeyStrict, false)
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = logger.LevelDebug
	}
	a.cfg = cfg
	a.log = logger.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if cfg.File != "" {
		a.log.Debug("config loaded", logger.F("file", cfg.File))
	}
	return nil
}

// diagnostics tags build and read diagnostics with the file being processed.
func (a *app) diagnostics(file string) mcuschema.Logger {
	return logger.Diagnostics(a.log.WithFields(logger.F("file", file)))
}

// buildContext carries the configured build options.
func (a *app) buildContext(ctx context.Context, file string) context.Context {
	return mcuschema.WithOptions(ctx, a.cfg.BuildOpt(a.diagnostics(file)))
}
