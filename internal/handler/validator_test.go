package handler

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_PlayerUID(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		uid     string
		wantErr bool
	}{
		// Best case
		{"typical uid", "2805365702", false},
		{"single digit", "7", false},

		// Boundary
		{"max length", strings.Repeat("9", MaxUIDLength), false},
		{"over max length", strings.Repeat("9", MaxUIDLength+1), true},
		{"empty", "", true},

		// Invalid
		{"letters", "abc123", true},
		{"negative", "-12345", true},
		{"whitespace", "123 456", true},
		{"unicode digits", "١٢٣", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(playerLevelRequest{UID: tt.uid})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("required", func(t *testing.T) {
		err := v.ValidateStruct(playerLevelRequest{})
		require.Error(t, err)
		assert.Equal(t, map[string]string{"uid": "This field is required"}, FormatValidationError(err))
	})

	t.Run("digits only", func(t *testing.T) {
		err := v.ValidateStruct(playerLevelRequest{UID: "12a"})
		require.Error(t, err)
		assert.Equal(t, map[string]string{"uid": "Must contain only digits"}, FormatValidationError(err))
	})

	t.Run("too long", func(t *testing.T) {
		err := v.ValidateStruct(playerLevelRequest{UID: strings.Repeat("1", MaxUIDLength+1)})
		require.Error(t, err)
		assert.Equal(t, map[string]string{"uid": "Must be at most 20 characters"}, FormatValidationError(err))
	})

	t.Run("not a validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", errs["error"])
	})
}

func TestGetValidator_ConcurrentFirstUse(t *testing.T) {
	const workers = 16

	got := make([]*Validator, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = GetValidator()
		}(i)
	}
	wg.Wait()

	for _, v := range got {
		require.NotNil(t, v)
		assert.Same(t, got[0], v)
	}
	assert.NoError(t, got[0].ValidateStruct(playerLevelRequest{UID: "123"}))
}
