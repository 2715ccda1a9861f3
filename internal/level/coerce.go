package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/LevelInfo_Go/internal/domain"
)

// ToInt reads an integer out of a decoded JSON value or a raw string.
// Floats are truncated toward zero and booleans read as 0 or 1.
// Nil, NaN, infinities, and non-numeric strings return domain.ErrInvalidLevel.
// A well-formed integer that does not fit in int64 returns the nearest bound
// together with domain.ErrValueOutOfRange.
func ToInt(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return truncate(n)
	case float32:
		return truncate(float64(n))
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidLevel, n.String())
		}
		return truncate(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return i, fmt.Errorf("%w: %q", domain.ErrValueOutOfRange, n)
		case err != nil:
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidLevel, n)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("%w: null", domain.ErrInvalidLevel)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", domain.ErrInvalidLevel, v)
	}
}

func truncate(f float64) (int64, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidLevel, f)
	case f >= math.MaxInt64:
		return math.MaxInt64, fmt.Errorf("%w: %v", domain.ErrValueOutOfRange, f)
	case f < math.MinInt64:
		return math.MinInt64, fmt.Errorf("%w: %v", domain.ErrValueOutOfRange, f)
	}
	return int64(f), nil
}
