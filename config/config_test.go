package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/vec/config"
	"go.jacobcolvin.com/vec/stringtest"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		check func(t *testing.T, f config.File)
		err   error
	}{
		"empty document": {
			input: "",
			check: func(t *testing.T, f config.File) {
				t.Helper()
				assert.Equal(t, config.Default(), f)
			},
		},
		"comment only": {
			input: "# nothing here\n",
			check: func(t *testing.T, f config.File) {
				t.Helper()
				assert.Equal(t, config.Default(), f)
			},
		},
		"top level keys": {
			input: stringtest.Input(`
				clockName: clk
				resetName: reset_n
				lowActiveSuffix: _n
				defaultLabel: U1
			`),
			check: func(t *testing.T, f config.File) {
				t.Helper()
				assert.Equal(t, "clk", f.ClockName)
				assert.Equal(t, "reset_n", f.ResetName)
				assert.Equal(t, "_n", f.LowActiveSuffix)
				assert.Equal(t, "U1", f.DefaultLabel)
				assert.Equal(t, config.Default().HighActiveSuffix, f.HighActiveSuffix)
			},
		},
		"nested keys keep sibling defaults": {
			input: stringtest.Input(`
				table:
				  captions:
				    in: Input
				  boldHeadings: false
				symbol:
				  scale: 4
				  colors:
				    background: "#000"
			`),
			check: func(t *testing.T, f config.File) {
				t.Helper()

				def := config.Default()

				assert.Equal(t, "Input", f.Table.Captions.In)
				assert.Equal(t, def.Table.Captions.Out, f.Table.Captions.Out)
				assert.False(t, f.Table.BoldHeadings)
				assert.True(t, f.Table.ExportGenerics)
				assert.Equal(t, 4, f.Symbol.Scale)
				assert.Equal(t, def.Symbol.RowHeight, f.Symbol.RowHeight)
				assert.Equal(t, "#000", f.Symbol.Colors.Background)
				assert.Equal(t, def.Symbol.Colors.Text, f.Symbol.Colors.Text)
			},
		},
		"empty suffix allowed": {
			input: `highActiveSuffix: ""`,
			check: func(t *testing.T, f config.File) {
				t.Helper()
				assert.Empty(t, f.HighActiveSuffix)
			},
		},
		"unknown top level key": {
			input: "clock: clk\n",
			err:   config.ErrInvalidConfig,
		},
		"unknown nested key": {
			input: stringtest.Input(`
				table:
				  headings:
				    width: W
			`),
			err: config.ErrInvalidConfig,
		},
		"caption for a collapsed direction": {
			input: stringtest.Input(`
				table:
				  captions:
				    inout: IO
			`),
			err: config.ErrInvalidConfig,
		},
		"wrong type": {
			input: "clockName: [a, b]\n",
			err:   config.ErrInvalidConfig,
		},
		"scale below minimum": {
			input: stringtest.Input(`
				symbol:
				  scale: 0
			`),
			err: config.ErrInvalidConfig,
		},
		"fractional scale": {
			input: stringtest.Input(`
				symbol:
				  scale: 1.5
			`),
			err: config.ErrInvalidConfig,
		},
		"bad color": {
			input: stringtest.Input(`
				symbol:
				  colors:
				    pin: red
			`),
			err: config.ErrInvalidConfig,
		},
		"not an object": {
			input: "- a\n- b\n",
			err:   config.ErrInvalidConfig,
		},
		"malformed yaml": {
			input: "clockName: [\n",
			err:   config.ErrInvalidConfig,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := config.Parse([]byte(tc.input))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			tc.check(t, f)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("clockName: sys_clk\n"), 0o644))

		f, used, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, used)
		assert.Equal(t, "sys_clk", f.ClockName)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		t.Parallel()

		_, _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, config.ErrReadConfig)
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bogus: true\n"), 0o644))

		_, err := config.LoadFile(path)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), path)
	})
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	paths := config.SearchPaths()
	assert.Equal(t, []string{
		"vec.yaml",
		".vec.yaml",
		filepath.Join("/tmp/xdg", "vec", "vec.yaml"),
		filepath.Join("/etc", "vec", "vec.yaml"),
	}, paths)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	s := config.Schema()

	_, err := s.Resolve(nil)
	require.NoError(t, err)

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "clockName")
	assert.Contains(t, props, "table")
	assert.Contains(t, props, "symbol")

	clock, ok := props["clockName"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "clk_i", clock["default"])
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(config.Default())
	require.NoError(t, err)

	f, err := config.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), f)
}
