package bootstrap

import (
	"log"

	"ai-tutoring-be/internal/config"
	"ai-tutoring-be/internal/controller"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/implementation"
	"ai-tutoring-be/internal/repository/memory"
	"ai-tutoring-be/internal/repository/unitofwork"
	"ai-tutoring-be/internal/service"
	"ai-tutoring-be/pkg/events"
	"ai-tutoring-be/pkg/lesson"
	"ai-tutoring-be/pkg/lesson/template"
	"ai-tutoring-be/pkg/llm/factory"

	pkgNats "ai-tutoring-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	LessonController   controller.ILessonController
	ProgressController controller.IProgressController
	CatalogController  controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Domain Components
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	contentCache := memory.NewTTLCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	templateRegistry := template.NewRegistry(
		implementation.NewTemplateRepository(db),
		sysLogger,
	)
	synthesizer := lesson.NewSynthesizer(
		llmProvider,
		cfg.Ai.RequestTimeout,
		cfg.Ai.Temperature,
		sysLogger,
	)

	// 4. Services
	publisherService := service.NewPublisherService(events.TopicProgress, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		events.TopicProgress,
		contentCache,
		sysLogger,
	)

	lessonService := service.NewLessonService(templateRegistry, synthesizer, sysLogger)
	progressService := service.NewProgressService(uowFactory, publisherService, natsPub, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, contentCache, sysLogger)

	// 5. Controllers
	return &Container{
		LessonController:   controller.NewLessonController(lessonService),
		ProgressController: controller.NewProgressController(progressService),
		CatalogController:  controller.NewCatalogController(catalogService),

		ConsumerService: consumerService,
	}
}
