package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LevelInfo_Go/internal/format"
	"github.com/osse101/LevelInfo_Go/internal/level"
	"github.com/osse101/LevelInfo_Go/internal/logger"
	"github.com/osse101/LevelInfo_Go/internal/metrics"
	"github.com/osse101/LevelInfo_Go/internal/playerinfo"
)

// Route parameter names
const (
	ParamUID         = "uid"
	ParamLevelNumber = "level_number"
)

// LevelHandlers serves the level progression endpoints
type LevelHandlers struct {
	fetcher playerinfo.Fetcher
	credit  string
	levels  LevelsResponse
}

// NewLevelHandlers creates level handlers backed by the given player info fetcher
func NewLevelHandlers(fetcher playerinfo.Fetcher, credit string) *LevelHandlers {
	InitValidator()
	return &LevelHandlers{
		fetcher: fetcher,
		credit:  credit,
		levels:  buildLevelsResponse(),
	}
}

// buildLevelsResponse renders the table once; it never changes
func buildLevelsResponse() LevelsResponse {
	thresholds := level.All()
	resp := LevelsResponse{
		Success:         true,
		TotalLevels:     len(thresholds),
		Level100Exp:     level.MaxExp(),
		Levels:          make(map[string]int64, len(thresholds)),
		FormattedLevels: make(map[string]string, len(thresholds)),
	}
	for _, t := range thresholds {
		key := level.Key(t.Level)
		resp.Levels[key] = t.Exp
		resp.FormattedLevels[key] = format.Number(t.Exp)
	}
	return resp
}

// HandleHome describes the service
// @Summary Service description
// @Description Lists the available endpoints
// @Tags level
// @Produce json
// @Success 200 {object} HomeResponse
// @Router / [get]
func (h *LevelHandlers) HandleHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HomeResponse{
			Success: true,
			Message: MsgServiceDescription,
			Endpoints: map[string]string{
				"/level/<uid>":              EndpointDescPlayerLevel,
				"/levels":                   EndpointDescAllLevels,
				"/level/<level_number>/exp": EndpointDescLevelExp,
			},
			Credit: h.credit,
		})
	}
}

// HandleGetPlayerLevel reports a player's level progress
// @Summary Get player level progress
// @Description Fetches the player from the info service and places their exp in the level table
// @Tags level
// @Produce json
// @Param uid path string true "Player UID"
// @Success 200 {object} PlayerLevelResponse
// @Router /level/{uid} [get]
func (h *LevelHandlers) HandleGetPlayerLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		uid := chi.URLParam(r, ParamUID)

		if err := GetValidator().ValidateStruct(playerLevelRequest{UID: uid}); err != nil {
			log.Debug("Rejected player uid", "uid", uid, "errors", FormatValidationError(err))
			respondFailure(w, FailureResponse{Message: ErrMsgInvalidUID, UID: &uid})
			return
		}

		payload, err := h.fetcher.Fetch(r.Context(), uid)
		if err != nil {
			respondFailure(w, FailureResponse{Message: mapFetchErrorToMessage(err), UID: &uid})
			return
		}

		info := payload.BasicInfo()
		progress, err := level.CalculateValue(info.Exp, info.Level)
		if err != nil {
			log.Warn("Level progress unavailable", "uid", uid, "player_level", info.Level, "player_exp", info.Exp, "error", err)
			metrics.ProgressCalculations.WithLabelValues(metrics.ResultFailed).Inc()
			respondFailure(w, FailureResponse{
				Message:  ErrMsgProgressUnavailable,
				UID:      &uid,
				Nickname: &info.Nickname,
			})
			return
		}
		metrics.ProgressCalculations.WithLabelValues(metrics.ResultOK).Inc()

		respondJSON(w, http.StatusOK, PlayerLevelResponse{
			Success:     true,
			UID:         uid,
			Nickname:    info.Nickname,
			Progress:    progress,
			Level100Exp: level.MaxExp(),
		})
	}
}

// HandleGetLevels returns the whole level table
// @Summary Get all level EXP requirements
// @Tags level
// @Produce json
// @Success 200 {object} LevelsResponse
// @Router /levels [get]
func (h *LevelHandlers) HandleGetLevels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.levels)
	}
}

// HandleGetLevelExp returns the exp required for one level
// @Summary Get EXP for a level
// @Tags level
// @Produce json
// @Param level_number path int true "Level (1-100)"
// @Success 200 {object} LevelExpResponse
// @Router /level/{level_number}/exp [get]
func (h *LevelHandlers) HandleGetLevelExp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, ParamLevelNumber))
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			metrics.LevelLookups.WithLabelValues(metrics.ResultInvalid).Inc()
			respondFailure(w, FailureResponse{Message: ErrMsgInvalidLevelNumber})
			return
		}
		// An integer too wide for int is still just out of range
		if err != nil || n < level.MinLevel || n > level.MaxLevel {
			metrics.LevelLookups.WithLabelValues(metrics.ResultFailed).Inc()
			respondFailure(w, FailureResponse{Message: ErrMsgLevelOutOfRange})
			return
		}

		exp := level.ExpForLevel(n)
		metrics.LevelLookups.WithLabelValues(metrics.ResultOK).Inc()
		respondJSON(w, http.StatusOK, LevelExpResponse{
			Success:      true,
			Level:        n,
			ExpRequired:  exp,
			FormattedExp: format.Number(exp),
		})
	}
}
