package app

import (
	"log"

	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/handler"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/infrastructure/webapi"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/server"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/service"
)

type App struct {
	cfg     *config.Config
	webAPIs *webapi.WebAPIs
	server  *server.Server
}

func New(cfg *config.Config) *App {
	webAPIs, err := webapi.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	services := service.New(cfg, webAPIs)

	handlers := handler.New(cfg, services)

	s := server.New(
		&server.InitParams{
			Config:   cfg,
			Handlers: handlers,
		},
	)

	return &App{
		cfg:     cfg,
		webAPIs: webAPIs,
		server:  s,
	}
}

func (a *App) Run() {
	a.server.Start()
	a.webAPIs.Shutdown()
}
