// Command vec extracts the entity declaration of a VHDL source file and
// documents it.
//
// # Usage
//
//	vec parse  [flags] [file|-]         print the entity as JSON or YAML
//	vec table  [flags] [file|-]         print a Markdown or DokuWiki port table
//	vec symbol [flags] -o out.png file  draw a PNG block symbol
//	vec export [flags] file             write several outputs to a directory
//	vec view   [flags] file             browse the ports interactively
//	vec schema                          print the config file JSON Schema
//	vec version                         print build information
//
// Port classification, table captions and symbol colors are read from a
// config file; see package [go.jacobcolvin.com/vec/config]. Flags that are
// set explicitly take precedence over the file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/vec/config"
	"go.jacobcolvin.com/vec/entity"
	"go.jacobcolvin.com/vec/log"
	"go.jacobcolvin.com/vec/profile"
)

var (
	// ErrNoDeclarations indicates the input yielded neither ports nor
	// generics.
	ErrNoDeclarations = errors.New("no port or generic declarations found")
	// ErrWriteOutput indicates a result could not be written.
	ErrWriteOutput = errors.New("write output")
	// ErrUnknownOutput indicates an unrecognized output format name.
	ErrUnknownOutput = errors.New("unknown output format")
	// ErrNotTerminal indicates an interactive command was run without a
	// terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

func main() {
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logCfg     *log.Config
	entityCfg  *entity.Config
	profileCfg *profile.Config
	profiler   *profile.Profiler
	logger     *slog.Logger

	configPath string
	file       config.File
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		logCfg:     log.NewConfig(),
		entityCfg:  entity.NewConfig(),
		profileCfg: profile.NewConfig(),
		file:       config.Default(),
	}

	rootCmd := &cobra.Command{
		Use:   "vec",
		Short: "Extract and document VHDL entity declarations",
		Long: `vec reads the entity declaration of a VHDL source file (its ports and
generics) and renders it as structured data, Markdown or DokuWiki tables,
or a PNG block symbol.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			err := a.setup(cmd.Flags())
			if err != nil {
				return err
			}

			a.profiler = a.profileCfg.NewProfiler()

			return a.profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.profiler.Stop()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to the config file")
	a.logCfg.RegisterFlags(pf)
	a.entityCfg.RegisterFlags(pf)
	a.profileCfg.RegisterFlags(pf)

	for _, register := range []func(*cobra.Command) error{
		a.logCfg.RegisterCompletions,
		a.entityCfg.RegisterCompletions,
		a.profileCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		a.parseCmd(),
		a.tableCmd(),
		a.symbolCmd(),
		a.exportCmd(),
		a.viewCmd(),
		a.schemaCmd(),
		a.versionCmd(),
	)

	return rootCmd
}

// setup creates the logger and merges the config file under the flags.
func (a *app) setup(flags *pflag.FlagSet) error {
	logger, err := a.logCfg.NewLogger(a.stderr)
	if err != nil {
		return err
	}

	a.logger = logger

	f, path, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if path != "" {
		a.logger.Debug("loaded config", slog.String("path", path))
	}

	a.file = f
	a.applyConfig(flags)

	return nil
}

// applyConfig copies config file values into the parser settings, except
// for flags set on the command line.
func (a *app) applyConfig(flags *pflag.FlagSet) {
	c := a.entityCfg

	set := func(name string, dst *string, v string) {
		if !flags.Changed(name) {
			*dst = v
		}
	}

	set(c.Flags.ClockName, &c.ClockName, a.file.ClockName)
	set(c.Flags.ResetName, &c.ResetName, a.file.ResetName)
	set(c.Flags.HighActiveSuffix, &c.HighActiveSuffix, a.file.HighActiveSuffix)
	set(c.Flags.LowActiveSuffix, &c.LowActiveSuffix, a.file.LowActiveSuffix)
	set(c.Flags.Label, &c.Label, a.file.DefaultLabel)
}

// inputArg returns the single optional input argument, defaulting to stdin.
func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}

	return args[0]
}

func (a *app) readInput(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", entity.ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrReadInput, err)
	}

	return data, nil
}

// parse reads and parses the input named by arg, logging through logger.
func (a *app) parse(arg string, logger *slog.Logger) (*entity.Entity, error) {
	src, err := a.readInput(arg)
	if err != nil {
		return nil, err
	}

	e := a.entityCfg.NewParser(logger).Parse(src)
	if e.IsEmpty() {
		if arg == "-" {
			arg = "stdin"
		}

		return nil, fmt.Errorf("%w: %s", ErrNoDeclarations, arg)
	}

	s := e.Summary()
	logger.Info("parsed entity",
		slog.String("name", s.Name),
		slog.Int("inputs", s.Inputs),
		slog.Int("outputs", s.Outputs),
		slog.Int("generics", s.Generics),
		slog.Bool("clock", s.Clock),
		slog.Bool("reset", s.Reset),
	)

	return e, nil
}
