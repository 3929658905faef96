package main

import (
	"context"
	"log"

	"notes-backend/internal/bootstrap"
	"notes-backend/internal/config"
	"notes-backend/internal/server"
	"notes-backend/internal/tracer"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns the deferred cleanup so a server error still flushes the logger
// and shuts the tracer down.
func run() error {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Start Background Services
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		return err
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	return srv.Run()
}
