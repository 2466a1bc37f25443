package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/mkarpov/userkeeper/internal/server"
	"github.com/mkarpov/userkeeper/internal/server/config"
)

func main() {

	ctx := context.Background()

	// .env is optional, env vars may come from the environment directly
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
