package entity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/vec/entity"
)

func TestResolveVector(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		raw  string
		want entity.Vector
	}{
		"descending": {
			raw:  "7 downto 0",
			want: entity.Vector{Kind: entity.VectorFixed, Start: "7", End: "0", Length: 8, Display: "8"},
		},
		"ascending": {
			raw:  "0 to 15",
			want: entity.Vector{Kind: entity.VectorFixed, Start: "0", End: "15", Length: 16, Display: "16"},
		},
		"separator case": {
			raw:  "3 DOWNTO 0",
			want: entity.Vector{Kind: entity.VectorFixed, Start: "3", End: "0", Length: 4, Display: "4"},
		},
		"single bit": {
			raw:  "0 to 0",
			want: entity.Vector{Kind: entity.VectorFixed, Start: "0", End: "0", Length: 1, Display: "1"},
		},
		"bounds beyond int range": {
			raw: "99999999999999999999 downto 0",
			want: entity.Vector{
				Kind:    entity.VectorFixed,
				Start:   "99999999999999999999",
				End:     "0",
				Length:  math.MaxInt,
				Display: "100000000000000000000",
			},
		},
		"large bounds with a small span": {
			raw: "18446744073709551620 downto 18446744073709551616",
			want: entity.Vector{
				Kind:    entity.VectorFixed,
				Start:   "18446744073709551620",
				End:     "18446744073709551616",
				Length:  5,
				Display: "5",
			},
		},
		"symbolic start": {
			raw:  "WIDTH-1 downto 0",
			want: entity.Vector{Kind: entity.VectorSymbolic, Start: "WIDTH-1", End: "0", Display: "WIDTH-1"},
		},
		"symbolic end": {
			raw:  "0 to N",
			want: entity.Vector{Kind: entity.VectorSymbolic, Start: "0", End: "N", Display: "N"},
		},
		"spaced expression": {
			raw:  "N - 1 downto 0",
			want: entity.Vector{Kind: entity.VectorSymbolic, Start: "N - 1", End: "0", Display: "N - 1"},
		},
		"separator is not validated": {
			raw:  "7 until 0",
			want: entity.Vector{Kind: entity.VectorFixed, Start: "7", End: "0", Length: 8, Display: "8"},
		},
		"no separator": {
			raw:  "SIZE",
			want: entity.Vector{Kind: entity.VectorSymbolic, Start: "SIZE", Display: "SIZE"},
		},
		"empty": {
			raw:  "  ",
			want: entity.Vector{Kind: entity.VectorSymbolic},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := entity.ResolveVector(tc.raw)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.IsBus())
		})
	}
}

func TestPortVectorString(t *testing.T) {
	t.Parallel()

	assert.Empty(t, entity.Port{Name: "a"}.VectorString())
	assert.Equal(t, "8", entity.Port{Vector: entity.ResolveVector("7 downto 0")}.VectorString())
	assert.Equal(t, "N", entity.Port{Vector: entity.ResolveVector("N downto 1")}.VectorString())
}
