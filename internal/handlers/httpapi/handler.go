// Package httpapi exposes the game service as a JSON-over-HTTP API. One POST
// endpoint per player action; the acting player is identified by the
// X-Player-ID header. The handlers stay thin: decode, delegate, encode.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/services/game"
)

// PlayerIDHeader carries the acting player's id on every request.
const PlayerIDHeader = "X-Player-ID"

// Config holds dependencies for the HTTP handler
type Config struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler serves the game API over HTTP
type Handler struct {
	game game.Service
}

// NewHandler creates a new HTTP handler with the given configuration
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{game: cfg.GameService}, nil
}

// Register attaches every API route to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/players", h.createPlayer)
	mux.HandleFunc("GET /v1/player", h.getPlayer)

	mux.HandleFunc("POST /v1/actions/attack", h.attack)
	mux.HandleFunc("POST /v1/actions/heal", h.heal)
	mux.HandleFunc("POST /v1/actions/flee", h.flee)
	mux.HandleFunc("POST /v1/actions/explore", h.explore)
	mux.HandleFunc("POST /v1/actions/event-choice", h.resolveEventChoice)
	mux.HandleFunc("POST /v1/actions/gather", h.gather)
	mux.HandleFunc("POST /v1/actions/set-zone", h.setZone)
	mux.HandleFunc("POST /v1/actions/gacha-pull", h.gachaPull)
	mux.HandleFunc("POST /v1/actions/equip", h.equip)
	mux.HandleFunc("POST /v1/actions/unequip", h.unequip)
	mux.HandleFunc("POST /v1/actions/use-item", h.useItem)
	mux.HandleFunc("POST /v1/actions/stack-inventory", h.stackInventory)
	mux.HandleFunc("POST /v1/actions/split-item", h.splitItem)
	mux.HandleFunc("POST /v1/actions/repair-item", h.repairItem)
	mux.HandleFunc("POST /v1/actions/buy", h.buy)
	mux.HandleFunc("POST /v1/actions/sell", h.sell)
	mux.HandleFunc("POST /v1/actions/claim-quest", h.claimQuest)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: err.Error(),
	})
}

// playerID pulls the acting player's id from the request header. An empty
// header is reported to the client; the service would reject it anyway.
func playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(PlayerIDHeader)
	if id == "" {
		writeError(w, errors.InvalidArgumentf("%s header is required", PlayerIDHeader))
		return "", false
	}
	return id, true
}

// decodeBody decodes a JSON request body into dst. A missing body is fine
// for endpoints whose parameters are all optional.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, errors.InvalidArgumentf("invalid request body: %v", err))
		return false
	}
	return true
}
