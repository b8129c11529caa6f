package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/vec/config"
	"go.jacobcolvin.com/vec/entity"
	"go.jacobcolvin.com/vec/log"
	"go.jacobcolvin.com/vec/stringtest"
	"go.jacobcolvin.com/vec/symbol"
	"go.jacobcolvin.com/vec/table"
)

var counterSource = stringtest.Input(`
	entity counter is
		generic (
			WIDTH : natural := 8
		);
		port (
			clk_i   : in  std_logic;
			rst_ni  : in  std_logic;
			load_i  : in  std_logic_vector(WIDTH-1 downto 0);
			count_o : out std_logic_vector(7 downto 0)
		);
	end entity;
`)

// run executes the root command with an empty config file unless args
// already name one.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if !strings.Contains(strings.Join(args, " "), "--config") {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		args = append(args, "--config", path)
	}

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(append(args, "--log-level", "error"))

	err := cmd.Execute()

	return stdout.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// parsedModel is the part of the "vec parse" output checked by tests.
type parsedModel struct {
	Name       string           `json:"name"`
	Label      string           `json:"label"`
	Ports      []map[string]any `json:"ports"`
	ClockIndex int              `json:"clockIndex"`
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args      []string
		stdin     string
		wantClock int
		wantLabel string
		err       error
	}{
		"defaults": {
			args:      []string{"parse"},
			stdin:     counterSource,
			wantClock: 0,
		},
		"flag sets clock name": {
			args:      []string{"parse", "--clock-name", "load_i"},
			stdin:     counterSource,
			wantClock: 2,
		},
		"config sets clock name": {
			args:      []string{"parse", "--config", writeConfig(t, "clockName: count_o\ndefaultLabel: U7\n")},
			stdin:     counterSource,
			wantClock: 3,
			wantLabel: "U7",
		},
		"flag beats config": {
			args: []string{
				"parse", "--config", writeConfig(t, "clockName: count_o\n"),
				"--clock-name", "rst_ni",
			},
			stdin:     counterSource,
			wantClock: 1,
		},
		"no declarations": {
			args:  []string{"parse"},
			stdin: "-- nothing to see\n",
			err:   ErrNoDeclarations,
		},
		"unknown output": {
			args:  []string{"parse", "-o", "xml"},
			stdin: counterSource,
			err:   ErrUnknownOutput,
		},
		"missing file": {
			args: []string{"parse", filepath.Join(t.TempDir(), "missing.vhd")},
			err:  entity.ErrReadInput,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, tc.stdin, tc.args...)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)

			var got parsedModel
			require.NoError(t, json.Unmarshal([]byte(out), &got))

			assert.Equal(t, "counter", got.Name)
			assert.Equal(t, tc.wantClock, got.ClockIndex)
			assert.Equal(t, tc.wantLabel, got.Label)
			assert.Len(t, got.Ports, 4)
		})
	}
}

func TestParseCommandYAML(t *testing.T) {
	t.Parallel()

	out, err := run(t, counterSource, "parse", "-o", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "name: counter")
	assert.Contains(t, out, "direction: OUT")
}

func TestTableCommand(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		want string
		err  error
	}{
		"markdown": {
			args: []string{"table"},
			want: "| **Name**",
		},
		"dokuwiki": {
			args: []string{"table", "-f", "dokuwiki"},
			want: "^",
		},
		"config captions": {
			args: []string{"table", "--config", writeConfig(t, "table:\n  captions:\n    in: Input\n")},
			want: "Input",
		},
		"unknown format": {
			args: []string{"table", "-f", "html"},
			err:  table.ErrUnknownFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, counterSource, tc.args...)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
			assert.Contains(t, out, "load_i")
		})
	}
}

func TestSymbolCommand(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "counter.png")

	_, err := run(t, counterSource, "symbol", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	t.Run("output required", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, counterSource, "symbol")
		require.Error(t, err)
	})
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	t.Run("all formats", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "docs")

		_, err := run(t, counterSource, "export", "--out-dir", dir,
			"--formats", "markdown,dokuwiki,png,json,yaml")
		require.NoError(t, err)

		for _, name := range []string{"counter.md", "counter.txt", "counter.png", "counter.json", "counter.yaml"} {
			assert.FileExists(t, filepath.Join(dir, name))
		}
	})

	t.Run("unknown format writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "docs")

		_, err := run(t, counterSource, "export", "--out-dir", dir, "--formats", "markdown,svg")
		require.ErrorIs(t, err, ErrUnknownOutput)
		assert.NoDirExists(t, dir)
	})
}

func TestSchemaCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "object", doc["type"])
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "vec "))

	out, err = run(t, "", "version", "-o", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := run(t, counterSource, "parse", "--config", writeConfig(t, "bogus: 1\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestFitImage(t *testing.T) {
	t.Parallel()

	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	tcs := map[string]struct {
		src        image.Rectangle
		cols, rows int
	}{
		"downscale wide":    {src: image.Rect(0, 0, 400, 100), cols: 40, rows: 10},
		"downscale tall":    {src: image.Rect(0, 0, 100, 400), cols: 40, rows: 10},
		"never upscale":     {src: image.Rect(0, 0, 4, 4), cols: 40, rows: 10},
		"zero size clamped": {src: image.Rect(0, 0, 4, 4), cols: 0, rows: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src := image.NewRGBA(tc.src)

			got := fitImage(src, tc.cols, tc.rows, bg)
			assert.Equal(t, max(tc.cols, 1), got.Bounds().Dx())
			assert.Equal(t, max(tc.rows, 1)*2, got.Bounds().Dy())
		})
	}

	t.Run("padding uses background", func(t *testing.T) {
		t.Parallel()

		got := fitImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), 40, 10, bg)
		assert.Equal(t, bg, got.RGBAAt(0, 0))
	})
}

func TestHalfBlocks(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 3, 5))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})

	var sb strings.Builder
	halfBlocks(img, &sb)

	lines := strings.Split(sb.String(), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.Equal(t, 3, strings.Count(line, "▀"))
	}

	assert.True(t, strings.HasPrefix(lines[0], "\033[38;2;255;0;0m\033[48;2;0;0;255m▀"))
}

func newTestViewModel(t *testing.T) *viewModel {
	t.Helper()

	e := entity.NewParser().Parse([]byte(counterSource))
	pub := log.NewPublisher()
	t.Cleanup(func() { require.NoError(t, pub.Close()) })

	opts := symbol.DefaultOptions()
	opts.Scale = 1

	return newViewModel(e, symbol.NewRenderer(opts), pub.Subscribe(),
		slog.New(slog.NewTextHandler(io.Discard, nil)), 100, 30)
}

func TestViewModelKeys(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		keys []tea.KeyPressMsg
		want int
	}{
		"down": {
			keys: []tea.KeyPressMsg{{Code: tea.KeyDown}},
			want: 1,
		},
		"down then up": {
			keys: []tea.KeyPressMsg{{Code: tea.KeyDown}, {Code: tea.KeyDown}, {Code: tea.KeyUp}},
			want: 1,
		},
		"up clamps at first": {
			keys: []tea.KeyPressMsg{{Code: tea.KeyUp}},
			want: 0,
		},
		"down clamps at last": {
			keys: []tea.KeyPressMsg{
				{Code: tea.KeyDown}, {Code: tea.KeyDown}, {Code: tea.KeyDown},
				{Code: tea.KeyDown}, {Code: tea.KeyDown},
			},
			want: 3,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := newTestViewModel(t)
			for _, k := range tc.keys {
				m.Update(k)
			}

			assert.Equal(t, tc.want, m.selected)
		})
	}
}

func TestViewModelResize(t *testing.T) {
	t.Parallel()

	m := newTestViewModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	cols, rows := m.symbolSize()
	assert.Equal(t, cols, m.frame.Bounds().Dx())
	assert.Equal(t, rows*2, m.frame.Bounds().Dy())
}

func TestViewModelLogs(t *testing.T) {
	t.Parallel()

	m := newTestViewModel(t)

	for i := range logLines + 2 {
		_, cmd := m.Update(logMsg(strings.Repeat("x", i+1)))
		assert.NotNil(t, cmd)
	}

	require.Len(t, m.logs, logLines)
	assert.Equal(t, strings.Repeat("x", logLines+2), m.logs[logLines-1])

	_, cmd := m.Update(logClosedMsg{})
	assert.Nil(t, cmd)

	assert.True(t, m.View().AltScreen)
}
