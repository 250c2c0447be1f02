package main

import (
	"log"

	"github.com/MrBrad8989/gta-events-bot/internal/app"
	"github.com/MrBrad8989/gta-events-bot/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
