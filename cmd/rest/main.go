package main

import (
	"context"
	"log"

	"testinesia-be/internal/bootstrap"
	"testinesia-be/internal/config"
	"testinesia-be/internal/server"
	"testinesia-be/internal/tracer"
	"testinesia-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	ctx := context.Background()
	if err := container.MailConsumer.Start(ctx); err != nil {
		log.Printf("Background Mail Consumer Error: %v", err)
	}
	container.ReminderService.Start(ctx)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
