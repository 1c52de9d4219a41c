package handler

import (
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/handler/emoji"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/handler/general"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/service"
)

type Handlers struct {
	Emoji   *emoji.Handler
	General *general.Handler
}

func New(cfg *config.Config, services *service.Services) *Handlers {
	return &Handlers{
		Emoji:   emoji.New(cfg, services),
		General: general.New(cfg, services),
	}
}
