package general

import (
	"encoding/json"
	"net/http"

	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/service"
)

const serviceVersion = "1.0.0"

type Handler struct {
	cfg      *config.Config
	services *service.Services
}

func New(cfg *config.Config, services *service.Services) *Handler {
	return &Handler{
		cfg:      cfg,
		services: services,
	}
}

func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, map[string]any{
		"service":            "TMoji Web API",
		"version":            serviceVersion,
		"status":             "active",
		"telegram_connected": h.services.EmojiPack.Configured(),
	})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, map[string]any{
		"status":       "healthy",
		"telegram_api": h.services.EmojiPack.Configured(),
	})
}

func respondJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}
