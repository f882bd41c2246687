package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	opts       options
	configFile string
	verbose    bool
	log        *zap.Logger
}

func newApp() *app {
	return &app{opts: defaultOptions()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "countrygen",
		Short: "Generate typed country modules from the ISO 3166 dataset",
		Long: `countrygen reads the ISO 3166 country and subdivision dataset and emits
strongly typed source modules: one closed type per category (continent,
region, subregion, world region) and one function per country and per
subdivision list.

Without a sub-command, countrygen generates.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: a.runGenerate,
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	pf.StringVar(&a.configFile, "config", "", "YAML config file; flags take precedence")
	pf.StringVar(&a.opts.Data, "data", a.opts.Data, "dataset directory (default: embedded dataset)")
	pf.StringVar(&a.opts.Target, "target", a.opts.Target, "output directory")
	pf.StringSliceVar(&a.opts.Backends, "backend", a.opts.Backends, "backends to run: elm, go, graphql")
	pf.StringVar(&a.opts.GoPackage, "go-package", a.opts.GoPackage, "import path of the generated Go package")
	pf.BoolVar(&a.opts.Format, "format", a.opts.Format, "run the formatter after writing")
	pf.StringVar(&a.opts.Formatter, "formatter", a.opts.Formatter, "formatter command, {dir} is replaced by the target")
	pf.StringVar(&a.opts.Header, "header", a.opts.Header, "header comment of generated files")
	pf.IntVar(&a.opts.Workers, "workers", a.opts.Workers, "parallel file writers (default: GOMAXPROCS)")
	pf.BoolVar(&a.opts.NoManifest, "no-manifest", a.opts.NoManifest, "do not write the run manifest")

	root.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Generate all modules (default)",
			Args:  cobra.NoArgs,
			RunE:  a.runGenerate,
		},
		&cobra.Command{
			Use:   "check",
			Short: "Compare the output directory with a fresh generation",
			Long: `check assembles every module in memory and compares it with the files in
the target directory and the run manifest. It exits non-zero on any drift.`,
			Args: cobra.NoArgs,
			RunE: a.runCheck,
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Regenerate whenever the dataset directory changes",
			Args:  cobra.NoArgs,
			RunE:  a.runWatch,
		},
		a.showCmd(),
	)
	return root
}

// setup builds the logger and merges the config file into the flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.log == nil {
		config := zap.NewProductionConfig()
		if a.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		log, err := config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		a.log = log
	}
	if a.configFile == "" {
		return nil
	}
	file, err := readOptions(a.configFile)
	if err != nil {
		return err
	}
	a.opts.merge(file, cmd.Flags().Changed)
	a.log.Debug("loaded config file", zap.String("path", a.configFile))
	return nil
}
