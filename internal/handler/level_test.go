package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LevelInfo_Go/internal/domain"
	"github.com/osse101/LevelInfo_Go/internal/playerinfo"
)

// MockFetcher mocks the playerinfo.Fetcher interface
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, uid string) (playerinfo.Payload, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(playerinfo.Payload), args.Error(1)
}

const testCredit = "t.me/test_credit"

func newLevelRouter(f playerinfo.Fetcher) http.Handler {
	h := NewLevelHandlers(f, testCredit)
	r := chi.NewRouter()
	r.Get("/", h.HandleHome())
	r.Get("/levels", h.HandleGetLevels())
	r.Get("/level/{uid}", h.HandleGetPlayerLevel())
	r.Get("/level/{level_number}/exp", h.HandleGetLevelExp())
	return r
}

func doGet(t *testing.T, h http.Handler, path string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "every level route answers 200")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func playerPayload(nickname string, lvl, exp any) playerinfo.Payload {
	return playerinfo.Payload{
		"basicInfo": map[string]any{
			"nickname": nickname,
			"level":    lvl,
			"exp":      exp,
		},
	}
}

func TestHandleHome(t *testing.T) {
	body := doGet(t, newLevelRouter(&MockFetcher{}), "/")

	assert.Equal(t, true, body["success"])
	assert.Equal(t, MsgServiceDescription, body["message"])
	assert.Equal(t, testCredit, body["credit"])

	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, endpoints, 3)
	assert.Contains(t, endpoints, "/level/<uid>")
	assert.Contains(t, endpoints, "/levels")
	assert.Contains(t, endpoints, "/level/<level_number>/exp")
}

func TestHandleGetPlayerLevel_Success(t *testing.T) {
	f := &MockFetcher{}
	f.On("Fetch", mock.Anything, "123456789").
		Return(playerPayload("Danger", json.Number("2"), json.Number("100")), nil)

	body := doGet(t, newLevelRouter(f), "/level/123456789")

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "123456789", body["uid"])
	assert.Equal(t, "Danger", body["nickname"])
	assert.Equal(t, float64(2), body["current_level"])
	assert.Equal(t, float64(100), body["current_exp"])
	assert.Equal(t, float64(48), body["exp_for_current_level"])
	assert.Equal(t, float64(202), body["exp_for_next_level"])
	assert.Equal(t, float64(102), body["exp_needed"])
	assert.Equal(t, float64(32032284-100), body["exp_needed_for_100"])
	assert.Equal(t, 33.8, body["progress_percentage"])
	assert.Equal(t, float64(32032284), body["level_100_exp"])
	f.AssertExpectations(t)
}

func TestHandleGetPlayerLevel_MaxLevel(t *testing.T) {
	f := &MockFetcher{}
	f.On("Fetch", mock.Anything, "42").
		Return(playerPayload("Veteran", json.Number("100"), json.Number("40000000")), nil)

	body := doGet(t, newLevelRouter(f), "/level/42")

	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(100), body["current_level"])
	assert.Equal(t, float64(0), body["exp_needed"])
	assert.Equal(t, float64(0), body["exp_needed_for_100"])
	assert.Equal(t, float64(100), body["progress_percentage"])
}

func TestHandleGetPlayerLevel_FetchFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"non-200 status", fmt.Errorf("%w: %d", domain.ErrUpstreamStatus, 503), ErrMsgAPIServerError},
		{"empty body", domain.ErrUpstreamEmpty, ErrMsgEmptyData},
		{"timeout", &domain.UpstreamTimeoutError{Timeout: 20 * time.Second}, "API Timeout (20s exceeded)"},
		{"unexpected", &domain.UpstreamError{Err: fmt.Errorf("connection refused")}, "Unexpected Error: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &MockFetcher{}
			f.On("Fetch", mock.Anything, "777").Return(nil, tt.err)

			body := doGet(t, newLevelRouter(f), "/level/777")

			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, "777", body["uid"])
			assert.NotContains(t, body, "nickname")
			f.AssertExpectations(t)
		})
	}
}

func TestHandleGetPlayerLevel_ProgressUnavailable(t *testing.T) {
	tests := []struct {
		name string
		lvl  any
		exp  any
	}{
		{"non-numeric level", "abc", json.Number("10")},
		{"level zero", json.Number("0"), json.Number("10")},
		{"null exp", json.Number("5"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &MockFetcher{}
			f.On("Fetch", mock.Anything, "555").Return(playerPayload("Shadow", tt.lvl, tt.exp), nil)

			body := doGet(t, newLevelRouter(f), "/level/555")

			assert.Equal(t, false, body["success"])
			assert.Equal(t, ErrMsgProgressUnavailable, body["message"])
			assert.Equal(t, "555", body["uid"])
			assert.Equal(t, "Shadow", body["nickname"])
		})
	}
}

func TestHandleGetPlayerLevel_MissingBasicInfo(t *testing.T) {
	f := &MockFetcher{}
	f.On("Fetch", mock.Anything, "1").Return(playerinfo.Payload{"other": "data"}, nil)

	body := doGet(t, newLevelRouter(f), "/level/1")

	// Defaults are level 0 and exp 0, which is not in the table
	assert.Equal(t, false, body["success"])
	assert.Equal(t, ErrMsgProgressUnavailable, body["message"])
	assert.Equal(t, domain.DefaultNickname, body["nickname"])
}

func TestHandleGetPlayerLevel_InvalidUID(t *testing.T) {
	f := &MockFetcher{}

	body := doGet(t, newLevelRouter(f), "/level/not-a-uid")

	assert.Equal(t, false, body["success"])
	assert.Equal(t, ErrMsgInvalidUID, body["message"])
	assert.Equal(t, "not-a-uid", body["uid"])
	f.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestHandleGetLevels(t *testing.T) {
	body := doGet(t, newLevelRouter(&MockFetcher{}), "/levels")

	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(100), body["total_levels"])
	assert.Equal(t, float64(32032284), body["level_100_exp"])

	levels, ok := body["levels"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, levels, 100)
	assert.Equal(t, float64(0), levels["1"])
	assert.Equal(t, float64(279860), levels["50"])
	assert.Equal(t, float64(32032284), levels["100"])

	formatted, ok := body["formatted_levels"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, formatted, 100)
	assert.Equal(t, "0", formatted["1"])
	assert.Equal(t, "279,860", formatted["50"])
	assert.Equal(t, "32,032,284", formatted["100"])
}

func TestHandleGetLevelExp(t *testing.T) {
	router := newLevelRouter(&MockFetcher{})

	t.Run("level 50", func(t *testing.T) {
		body := doGet(t, router, "/level/50/exp")
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(50), body["level"])
		assert.Equal(t, float64(279860), body["exp_required"])
		assert.Equal(t, "279,860", body["formatted_exp"])
	})

	t.Run("level 1", func(t *testing.T) {
		body := doGet(t, router, "/level/1/exp")
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(0), body["exp_required"])
		assert.Equal(t, "0", body["formatted_exp"])
	})

	t.Run("level 100", func(t *testing.T) {
		body := doGet(t, router, "/level/100/exp")
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(32032284), body["exp_required"])
	})

	outOfRange := []string{"0", "101", "-5", "99999999999999999999", "-99999999999999999999"}
	for _, n := range outOfRange {
		t.Run("out of range "+n, func(t *testing.T) {
			body := doGet(t, router, "/level/"+n+"/exp")
			assert.Equal(t, map[string]any{
				"success": false,
				"message": ErrMsgLevelOutOfRange,
			}, body)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		body := doGet(t, router, "/level/abc/exp")
		assert.Equal(t, false, body["success"])
		assert.Equal(t, ErrMsgInvalidLevelNumber, body["message"])
	})
}
