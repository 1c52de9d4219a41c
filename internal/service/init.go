package service

import (
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/infrastructure/webapi"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/service/emojipack"
)

type Services struct {
	EmojiPack *emojipack.Service
}

func New(cfg *config.Config, apis *webapi.WebAPIs) *Services {
	var tg emojipack.TelegramAPI
	if apis.TG != nil {
		tg = apis.TG
	}

	return &Services{
		EmojiPack: emojipack.New(cfg, tg),
	}
}
