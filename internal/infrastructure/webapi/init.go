package webapi

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/infrastructure/webapi/tgbot"
)

type WebAPIs struct {
	// TG is nil when no bot credential is configured.
	TG *tgbot.API
}

func New(cfg *config.Config) (*WebAPIs, error) {
	if cfg.BotToken == "" {
		slog.Warn("no bot_token set, running in not-configured mode")

		return &WebAPIs{}, nil
	}

	tg, err := tgbot.New(cfg.Debug, cfg.BotToken)
	if err != nil {
		return nil, errors.Wrap(err, "WebAPIs.New")
	}

	return &WebAPIs{TG: tg}, nil
}

func (w *WebAPIs) Shutdown() {
	if w.TG != nil {
		w.TG.Shutdown()
	}
}
