package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/vec/config"
	"go.jacobcolvin.com/vec/entity"
	"go.jacobcolvin.com/vec/symbol"
	"go.jacobcolvin.com/vec/table"
	"go.jacobcolvin.com/vec/version"
)

// Data formats.
const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputPNG  = "png"
)

func modelFormats() []string {
	return []string{outputJSON, outputYAML}
}

// exportFormats returns every format accepted by "vec export".
func exportFormats() []string {
	return slices.Concat(table.GetAllFormatStrings(), []string{outputPNG}, modelFormats())
}

type completionFunc = func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)

func fixedCompletion(values []string) completionFunc {
	return cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp)
}

// encodeModel serializes the model of e as JSON or YAML.
func encodeModel(e *entity.Entity, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case outputJSON:
		out, err := json.MarshalIndent(e.Model(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}

		return append(out, '\n'), nil

	case outputYAML:
		out, err := yaml.Marshal(e.Model())
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, format)
}

func (a *app) parseCmd() *cobra.Command {
	output := outputJSON

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the parsed entity as JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := a.parse(inputArg(args), a.logger)
			if err != nil {
				return err
			}

			out, err := encodeModel(e, output)
			if err != nil {
				return err
			}

			_, err = a.stdout.Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output,
		fmt.Sprintf("output format (%s)", strings.Join(modelFormats(), ", ")))
	mustRegisterCompletion(cmd, "output", fixedCompletion(modelFormats()))

	return cmd
}

func (a *app) tableCmd() *cobra.Command {
	format := string(table.FormatMarkdown)

	cmd := &cobra.Command{
		Use:   "table [file|-]",
		Short: "Print the port and generic tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := table.NewRenderer(table.Format(format), a.file.Table)
			if err != nil {
				return err
			}

			e, err := a.parse(inputArg(args), a.logger)
			if err != nil {
				return err
			}

			err = r.Render(a.stdout, e)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format,
		fmt.Sprintf("table format (%s)", strings.Join(table.GetAllFormatStrings(), ", ")))
	mustRegisterCompletion(cmd, "format", fixedCompletion(table.GetAllFormatStrings()))

	return cmd
}

func (a *app) symbolCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "symbol [file|-]",
		Short: "Draw a PNG block symbol of the entity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := a.parse(inputArg(args), a.logger)
			if err != nil {
				return err
			}

			r := symbol.NewRenderer(a.file.Symbol)

			if output == "-" {
				return r.Render(a.stdout, e)
			}

			return writeFile(output, func(w io.Writer) error {
				return r.Render(w, e)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `PNG file to write ("-" for stdout)`)

	err := cmd.MarkFlagRequired("output")
	if err != nil {
		panic(err)
	}

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		outDir  = "."
		formats = []string{string(table.FormatMarkdown), outputPNG}
	)

	cmd := &cobra.Command{
		Use:   "export [file|-]",
		Short: "Write tables, symbol and data files to a directory",
		Long: `export writes one file per format to the output directory, named after the
entity: <entity>.md, <entity>.txt (DokuWiki), <entity>.png, <entity>.json and
<entity>.yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := a.parse(inputArg(args), a.logger)
			if err != nil {
				return err
			}

			return a.export(e, outDir, formats)
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", outDir, "directory to write to, created if missing")
	cmd.Flags().StringSliceVar(&formats, "formats", formats,
		fmt.Sprintf("formats to write (%s)", strings.Join(exportFormats(), ", ")))
	mustRegisterCompletion(cmd, "formats", fixedCompletion(exportFormats()))
	mustRegisterCompletion(cmd, "out-dir", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	})

	return cmd
}

// export writes e in every format to dir. All formats are checked before
// anything is written.
func (a *app) export(e *entity.Entity, dir string, formats []string) error {
	type job struct {
		path  string
		write func(io.Writer) error
	}

	base := e.Name()
	if base == "" {
		base = "entity"
	}

	jobs := make([]job, 0, len(formats))

	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))

		switch f {
		case outputPNG:
			r := symbol.NewRenderer(a.file.Symbol)
			jobs = append(jobs, job{
				path:  filepath.Join(dir, base+"."+outputPNG),
				write: func(w io.Writer) error { return r.Render(w, e) },
			})

		case outputJSON, outputYAML:
			out, err := encodeModel(e, f)
			if err != nil {
				return err
			}

			jobs = append(jobs, job{
				path: filepath.Join(dir, base+"."+f),
				write: func(w io.Writer) error {
					_, err := w.Write(out)
					return err
				},
			})

		default:
			r, err := table.NewRenderer(table.Format(f), a.file.Table)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrUnknownOutput, f)
			}

			jobs = append(jobs, job{
				path:  filepath.Join(dir, base+"."+table.Format(f).Extension()),
				write: func(w io.Writer) error { return r.Render(w, e) },
			})
		}
	}

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	for _, j := range jobs {
		err := writeFile(j.path, j.write)
		if err != nil {
			return err
		}

		a.logger.Info("wrote file", slog.String("path", j.path))
	}

	return nil
}

// writeFile creates path and fills it with write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	err = write(f)
	if err != nil {
		//nolint:errcheck // The write error is more relevant.
		f.Close()

		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func (a *app) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(config.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}

			_, err = a.stdout.Write(append(out, '\n'))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	output := ""

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()

			var (
				out []byte
				err error
			)

			switch output {
			case "":
				out = []byte(info.String() + "\n")
			case outputJSON:
				out, err = json.MarshalIndent(info, "", "  ")
				out = append(out, '\n')
			case outputYAML:
				out, err = yaml.Marshal(info)
			default:
				return fmt.Errorf("%w: %q", ErrUnknownOutput, output)
			}

			if err != nil {
				return fmt.Errorf("encode version: %w", err)
			}

			_, err = a.stdout.Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output,
		fmt.Sprintf("output format (%s); plain text when empty", strings.Join(modelFormats(), ", ")))
	mustRegisterCompletion(cmd, "output", fixedCompletion(modelFormats()))

	return cmd
}

func mustRegisterCompletion(cmd *cobra.Command, flag string, fn completionFunc) {
	err := cmd.RegisterFlagCompletionFunc(flag, fn)
	if err != nil {
		panic(fmt.Sprintf("registering %s completion: %v", flag, err))
	}
}
