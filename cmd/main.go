package main

import (
	"log"

	"github.com/CORBENDALLAS111/Tmoji-Web/internal/app"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
)

func main() {
	cfg, err := config.NewConfig("./config")
	if err != nil {
		log.Fatal(err)
	}

	app.New(cfg).Run()
}
