package level

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/osse101/LevelInfo_Go/internal/domain"
)

// Progress describes where an exp total sits between two table thresholds
type Progress struct {
	CurrentLevel       int     `json:"current_level"`
	CurrentExp         int64   `json:"current_exp"`
	ExpForCurrentLevel int64   `json:"exp_for_current_level"`
	ExpForNextLevel    int64   `json:"exp_for_next_level"`
	ExpNeeded          int64   `json:"exp_needed"`
	ExpNeededFor100    int64   `json:"exp_needed_for_100"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// Calculate places currentExp within the table for currentLevel.
//
// Levels at or above MaxLevel fold into a saturated max-level result. Below
// that, a zero threshold for the current or next level counts as a lookup miss
// and returns domain.ErrProgressUnavailable; level 1 is the one level whose
// threshold is genuinely zero. ExpNeeded and ExpNeededFor100 are not clamped and
// go negative when currentExp is already past the threshold.
func Calculate(currentExp int64, currentLevel int) (*Progress, error) {
	if currentLevel >= MaxLevel {
		return &Progress{
			CurrentLevel:       MaxLevel,
			CurrentExp:         currentExp,
			ExpForCurrentLevel: MaxExp(),
			ExpForNextLevel:    MaxExp(),
			ExpNeeded:          0,
			ExpNeededFor100:    0,
			ProgressPercentage: 100,
		}, nil
	}

	expForCurrent := ExpForLevel(currentLevel)
	expForNext := ExpForLevel(currentLevel + 1)

	if expForNext == 0 || (expForCurrent == 0 && currentLevel != MinLevel) {
		return nil, fmt.Errorf("level %d: %w", currentLevel, domain.ErrProgressUnavailable)
	}

	return &Progress{
		CurrentLevel:       currentLevel,
		CurrentExp:         currentExp,
		ExpForCurrentLevel: expForCurrent,
		ExpForNextLevel:    expForNext,
		ExpNeeded:          expForNext - currentExp,
		ExpNeededFor100:    MaxExp() - currentExp,
		ProgressPercentage: percentage(currentExp, expForCurrent, expForNext),
	}, nil
}

// CalculateValue runs Calculate on untyped values straight from a player info
// payload. A level or exp that cannot be read as an integer returns
// domain.ErrProgressUnavailable wrapping the coercion error. A level too large
// for int64 is still a level above MaxLevel and saturates.
func CalculateValue(rawExp, rawLevel any) (*Progress, error) {
	lvl, err := ToInt(rawLevel)
	switch {
	case errors.Is(err, domain.ErrValueOutOfRange) && lvl > 0:
		// clamped to MaxInt64, saturates below
	case err != nil:
		return nil, fmt.Errorf("%w: %w", domain.ErrProgressUnavailable, err)
	}
	exp, err := ToInt(rawExp)
	if err != nil {
		return nil, fmt.Errorf("%w: exp: %w", domain.ErrProgressUnavailable, err)
	}

	switch {
	case lvl >= MaxLevel:
		return Calculate(exp, MaxLevel)
	case lvl < MinLevel:
		return nil, fmt.Errorf("level %d: %w", lvl, domain.ErrProgressUnavailable)
	}
	return Calculate(exp, int(lvl))
}

// percentage returns how far exp is between the two thresholds, clamped to
// 0-100 and rounded to one decimal place. A non-positive span yields 0.
// Rounding is done on the exact binary value with ties to even, so 6.25
// becomes 6.2 while 0.15 (stored just below) becomes 0.1.
func percentage(exp, from, to int64) float64 {
	span := to - from
	if span <= 0 {
		return 0
	}

	pct := float64(exp-from) / float64(span) * 100
	pct = math.Max(0, math.Min(100, pct))
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(pct, 'f', 1, 64), 64)
	return rounded
}
