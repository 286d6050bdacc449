// Package main provides the CLI interface for the nncalc calculator.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sivchari/nncalc/internal/config"
	"github.com/sivchari/nncalc/internal/display"
	"github.com/sivchari/nncalc/internal/keypad"
	"github.com/sivchari/nncalc/pkg/natural"
	"github.com/sivchari/nncalc/internal/repl"
	"github.com/sivchari/nncalc/pkg/nncalc"
)

const version = "0.1.0"

type options struct {
	fs         afero.Fs
	configFile string
	verbose    bool
	strict     bool
	format     string
}

func newRootCmd() *cobra.Command {
	return newRootCmdFS(afero.NewOsFs())
}

// newRootCmdFS builds the command tree with every config file read and
// written through fs.
func newRootCmdFS(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "nncalc",
		Short: "A two-register arbitrary-precision natural number calculator",
		Long: `nncalc is a calculator over natural numbers of unbounded size.
It keeps two registers, top and bottom. Digits are appended to bottom,
and every operation combines top with bottom.

Guarded operations:
- subtract needs top >= bottom
- divide needs bottom != 0
- power needs bottom <= 2147483647
- root needs bottom >= 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is .nncalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "reject operations whose precondition does not hold")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", "display format (text, json)")

	rootCmd.AddCommand(newPressCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func newPressCmd(opts *options) *cobra.Command {
	var (
		top, bottom string
		trace       bool
	)

	cmd := &cobra.Command{
		Use:   "press KEY...",
		Short: "Press keys in order and print the resulting display",
		Long: `Press each key in order against a fresh calculator and print the
final display. Keys are digits (0-9, or runs like 123), enter, clear,
swap, +, -, *, /, ^ and root.`,
		Example: "  nncalc press 100 enter clear 7 /",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			topN, err := natural.Parse(top)
			if err != nil {
				return fmt.Errorf("invalid --top: %w", err)
			}

			bottomN, err := natural.Parse(bottom)
			if err != nil {
				return fmt.Errorf("invalid --bottom: %w", err)
			}

			sink, err := display.New(cfg.Display.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			engine := newEngine(newLogger(cmd, cfg), cfg, sink, nncalc.WithRegisters(topN, bottomN))

			var after func(string, nncalc.Snapshot) error
			if trace {
				after = func(key string, _ nncalc.Snapshot) error {
					if cfg.Display.Format == display.FormatText {
						fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", key)
					}

					return sink.Flush()
				}
			}

			if _, err := keypad.PressAll(engine, args, after); err != nil {
				return err
			}

			if trace {
				return nil
			}

			return sink.Flush()
		},
	}

	cmd.Flags().StringVar(&top, "top", "0", "initial top register")
	cmd.Flags().StringVar(&bottom, "bottom", "0", "initial bottom register")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every key")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nncalc version %s\n", version)
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage nncalc configuration",
		Long:  "Commands for managing nncalc configuration files",
	}

	configInitCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Initialize a new nncalc configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			filename := config.DefaultFile
			if len(args) > 0 {
				filename = args[0]
			}

			if config.ExistsFS(opts.fs, filename) && !force {
				return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", filename)
			}

			if err := config.Default().SaveFS(opts.fs, filename); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", filename)

			return nil
		},
	}
	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")

	configValidateCmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := ""
			if len(args) > 0 {
				configFile = args[0]
			}

			if _, err := config.LoadFS(opts.fs, configFile); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")

			return nil
		},
	}

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	return configCmd
}

// loadConfig reads the config file and applies flags set on the command line.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadFS(opts.fs, opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}

	if flags.Changed("format") {
		cfg.Display.Format = opts.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger writes to the command's stderr when verbose, and nowhere otherwise.
func newLogger(cmd *cobra.Command, cfg *config.Config) *log.Logger {
	logOut := io.Discard
	if cfg.Verbose {
		logOut = cmd.ErrOrStderr()
	}

	return log.New(logOut, "nncalc: ", 0)
}

func newEngine(logger *log.Logger, cfg *config.Config, sink display.Sink, opts ...nncalc.Option) *nncalc.Engine {
	opts = append(opts,
		nncalc.WithStrict(cfg.Strict),
		nncalc.WithLogger(logger),
	)

	return nncalc.New(sink, opts...)
}

func runREPL(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	sink, err := display.New(cfg.Display.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg)
	logger.Printf("Starting REPL (strict=%t, format=%s)", cfg.Strict, cfg.Display.Format)

	engine := newEngine(logger, cfg, sink)

	return repl.New(engine, sink, cfg.REPL).Start(cmd.InOrStdin(), cmd.OutOrStdout())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
