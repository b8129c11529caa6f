package stringtest_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/vec/entity"
	"go.jacobcolvin.com/vec/stringtest"
)

func TestInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"single declaration": {
			input: "ENTITY e IS END e;",
			want:  "ENTITY e IS END e;",
		},
		"leading newline": {
			input: "\nEND foo;",
			want:  "END foo;",
		},
		"trailing newline": {
			input: "END foo;\n",
			want:  "END foo;",
		},
		"tab indented entity": {
			input: "\n\t\tENTITY foo IS\n\t\t  PORT (a : in bit);\n\t\tEND foo;\n",
			want:  "ENTITY foo IS\n  PORT (a : in bit);\nEND foo;",
		},
		"space indented port list with comment": {
			input: "\n    entity counter is\n      port (\n        -- clock\n" +
				"        clk_i : in std_logic\n      );\n    end entity;",
			want: "entity counter is\n  port (\n    -- clock\n    clk_i : in std_logic\n  );\nend entity;",
		},
		"blank line between sections": {
			input: "\n    generic (N : natural := 4);\n\n    port (q : out bit);",
			want:  "generic (N : natural := 4);\n\nport (q : out bit);",
		},
		"whitespace-only line": {
			input: "\n\tport (\n\t  \n\t);",
			want:  "port (\n\n);",
		},
		"mixed tabs and spaces share the tab": {
			input: "\n\t  a : in bit;\n\t\tb : in bit;",
			want:  "  a : in bit;\n\tb : in bit;",
		},
		"extra leading newline is kept": {
			input: "\n\n-- header\nentity e is",
			want:  "\n-- header\nentity e is",
		},
		"extra trailing newline is kept": {
			input: "end e;\n\n",
			want:  "end e;\n",
		},
		"already dedented": {
			input: "entity e is\n  port (a : in bit);\nend e;",
			want:  "entity e is\n  port (a : in bit);\nend e;",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.Input(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInputParses(t *testing.T) {
	t.Parallel()

	src := stringtest.Input(`
		entity mux is
		  generic (
		    WIDTH : natural := 8
		  );
		  port (
		    sel_i : in  std_logic;
		    a_i   : in  std_logic_vector(WIDTH-1 downto 0);
		    y_o   : out std_logic_vector(WIDTH-1 downto 0)
		  );
		end entity;
	`)

	e := quietParser().Parse([]byte(src))

	assert.Equal(t, "mux", e.Name())
	require.Len(t, e.Ports(), 3)
	require.Len(t, e.Generics(), 1)
	assert.Equal(t, "WIDTH", e.Ports()[2].VectorString())
}

func TestLineEndingsParseAlike(t *testing.T) {
	t.Parallel()

	lines := []string{
		"ENTITY gate IS",
		"  PORT (",
		"    a_i : in  bit; -- first input",
		"    y_o : out bit",
		"  );",
		"END gate;",
	}

	lf := quietParser().Parse([]byte(stringtest.JoinLF(lines...)))
	crlf := quietParser().Parse([]byte(stringtest.JoinCRLF(lines...)))

	assert.Equal(t, lf.Model(), crlf.Model())
	assert.Len(t, crlf.Ports(), 2)
}

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"empty input": {
			input: nil,
			want:  "",
		},
		"single row": {
			input: []string{"| clk_i | std_logic |"},
			want:  "| clk_i | std_logic |",
		},
		"table rows": {
			input: []string{"| Name |", "|------|", "| a_i  |"},
			want:  "| Name |\n|------|\n| a_i  |",
		},
		"trailing empty line": {
			input: []string{"| a_i |", ""},
			want:  "| a_i |\n",
		},
		"blank separator": {
			input: []string{"ports", "", "generics"},
			want:  "ports\n\ngenerics",
		},
		"already contains newlines": {
			input: []string{"a_i\nb_i", "y_o"},
			want:  "a_i\nb_i\ny_o",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.JoinLF(tc.input...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJoinCRLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"empty input": {
			input: nil,
			want:  "",
		},
		"single line": {
			input: []string{"END foo;"},
			want:  "END foo;",
		},
		"declaration lines": {
			input: []string{"ENTITY foo IS", "END foo;"},
			want:  "ENTITY foo IS\r\nEND foo;",
		},
		"blank separator": {
			input: []string{"ports", "", "generics"},
			want:  "ports\r\n\r\ngenerics",
		},
		"already contains newlines": {
			input: []string{"a_i\nb_i", "y_o"},
			want:  "a_i\nb_i\r\ny_o",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := stringtest.JoinCRLF(tc.input...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func quietParser() *entity.Parser {
	return entity.NewParser(entity.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}
