package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/LevelInfo_Go/internal/level"
)

// Response bodies for the level endpoints. Every one of them is sent with
// HTTP 200; logical failure is carried by Success=false.

// HomeResponse describes the service and its endpoints
type HomeResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
	Credit    string            `json:"credit"`
}

// PlayerLevelResponse reports a player's progression through the level table
type PlayerLevelResponse struct {
	Success  bool   `json:"success"`
	UID      string `json:"uid"`
	Nickname string `json:"nickname"`
	*level.Progress
	Level100Exp int64 `json:"level_100_exp"`
}

// LevelsResponse dumps the whole level table
type LevelsResponse struct {
	Success         bool              `json:"success"`
	TotalLevels     int               `json:"total_levels"`
	Level100Exp     int64             `json:"level_100_exp"`
	Levels          map[string]int64  `json:"levels"`
	FormattedLevels map[string]string `json:"formatted_levels"`
}

// LevelExpResponse reports the exp required for one level
type LevelExpResponse struct {
	Success      bool   `json:"success"`
	Level        int    `json:"level"`
	ExpRequired  int64  `json:"exp_required"`
	FormattedExp string `json:"formatted_exp"`
}

// FailureResponse is the body for any logical failure.
// UID and Nickname are only present on the per-player endpoint.
type FailureResponse struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	UID      *string `json:"uid,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still be reported
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"success":false,"message":"` + ErrMsgEncodeFailed + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondFailure sends a success=false body with HTTP 200
func respondFailure(w http.ResponseWriter, resp FailureResponse) {
	resp.Success = false
	respondJSON(w, http.StatusOK, resp)
}

// RespondFailure sends a success=false body with only a message.
// Used by middleware that must answer in the same shape as the handlers.
func RespondFailure(w http.ResponseWriter, message string) {
	respondFailure(w, FailureResponse{Message: message})
}

// RespondPlayerFailure is RespondFailure for the per-player route, echoing the uid
func RespondPlayerFailure(w http.ResponseWriter, message, uid string) {
	respondFailure(w, FailureResponse{Message: message, UID: &uid})
}

// RespondError sends a success=false body with an explicit status code.
// Only routes outside the level API use a non-200 status.
func RespondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, FailureResponse{Success: false, Message: message})
}
