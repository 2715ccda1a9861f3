package level

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LevelInfo_Go/internal/domain"
)

func TestToInt(t *testing.T) {
	t.Run("accepts integer-like values", func(t *testing.T) {
		tests := []struct {
			name  string
			input any
			want  int64
		}{
			{"int", 42, 42},
			{"int32", int32(7), 7},
			{"int64", int64(31000000), 31000000},
			{"float truncates", 12.9, 12},
			{"negative float truncates toward zero", -1.5, -1},
			{"float32", float32(3), 3},
			{"true", true, 1},
			{"false", false, 0},
			{"string", "65", 65},
			{"signed string", "+8", 8},
			{"json integer", json.Number("77"), 77},
			{"json float", json.Number("77.6"), 77},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := ToInt(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("rejects non-integer values", func(t *testing.T) {
		inputs := []any{
			"abc",
			"12.5",
			"",
			nil,
			math.NaN(),
			math.Inf(1),
			json.Number("x"),
			map[string]any{"level": 1},
		}

		for _, input := range inputs {
			_, err := ToInt(input)
			assert.ErrorIs(t, err, domain.ErrInvalidLevel, "input %#v", input)
		}
	})

	t.Run("clamps integers beyond int64", func(t *testing.T) {
		tests := []struct {
			name  string
			input any
			want  int64
		}{
			{"json integer", json.Number("100000000000000000000"), math.MaxInt64},
			{"json exponent", json.Number("1e30"), math.MaxInt64},
			{"string", "99999999999999999999", math.MaxInt64},
			{"negative string", "-99999999999999999999", math.MinInt64},
			{"float", -1e30, math.MinInt64},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := ToInt(tt.input)
				assert.ErrorIs(t, err, domain.ErrValueOutOfRange)
				assert.NotErrorIs(t, err, domain.ErrInvalidLevel)
				assert.Equal(t, tt.want, got)
			})
		}
	})
}
