package bootstrap

import (
	"log"

	"notes-backend/internal/config"
	"notes-backend/internal/controller"
	"notes-backend/internal/pkg/identifier"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/repository/memory"
	"notes-backend/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	HealthController controller.IHealthController
	NoteController   controller.INoteController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Id Generation (resolved once, immutable for the process lifetime)
	idGenerator := identifier.New(cfg.App.UseIntIds)
	log.Printf("[INFO] Using id mode: %s", idGenerator.Mode())

	// 4. Repositories
	noteRepository := memory.NewNoteRepository()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Events.NoteTopic)
	noteService := service.NewNoteService(noteRepository, idGenerator, publisherService, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.NoteTopic, sysLogger)

	// 6. Controllers
	healthController := controller.NewHealthController()
	noteController := controller.NewNoteController(noteService, idGenerator)

	return &Container{
		HealthController: healthController,
		NoteController:   noteController,
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
