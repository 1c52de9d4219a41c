package emoji

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/domain"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/service"
)

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

// GetPack resolves a pack from a sharing link or pack name passed in the
// url query parameter.
func (h *Handler) GetPack(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		respondError(w, http.StatusBadRequest, "url query parameter is required")

		return
	}

	pack, err := h.services.EmojiPack.ResolvePack(r.Context(), rawURL)
	if err != nil {
		h.respondResolveError(w, err)

		return
	}

	respondJSON(w, http.StatusOK, pack)
}

// GetEmoji resolves a single emoji by its custom emoji id.
func (h *Handler) GetEmoji(w http.ResponseWriter, r *http.Request) {
	emojiID := chi.URLParam(r, "emojiID")

	emoji, err := h.services.EmojiPack.ResolveEmoji(r.Context(), emojiID)
	if err != nil {
		h.respondResolveError(w, err)

		return
	}

	respondJSON(w, http.StatusOK, emoji)
}

// GetManifest resolves a pack by its canonical name, without the pack
// thumbnail.
func (h *Handler) GetManifest(w http.ResponseWriter, r *http.Request) {
	packID := chi.URLParam(r, "packID")

	pack, err := h.services.EmojiPack.ResolveManifest(r.Context(), packID)
	if err != nil {
		h.respondResolveError(w, err)

		return
	}

	respondJSON(w, http.StatusOK, pack)
}

// ClearCache is a compatibility endpoint: nothing is cached, so there is
// nothing to clear.
func (h *Handler) ClearCache(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Cache cleared",
	})
}

func (h *Handler) respondResolveError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotConfigured) {
		respondError(w, http.StatusServiceUnavailable, "Telegram API not configured")

		return
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		respondError(w, http.StatusNotFound, notFound.Error())

		return
	}

	slog.Error("EmojiHandler.respondResolveError", slog.Any("err", err))
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
