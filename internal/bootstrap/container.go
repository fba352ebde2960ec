package bootstrap

import (
	"log"
	"time"

	"ai-tutoring-be/internal/config"
	"ai-tutoring-be/internal/controller"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/memory"
	"ai-tutoring-be/internal/repository/unitofwork"
	"ai-tutoring-be/internal/service"
	"ai-tutoring-be/pkg/llm/factory"

	pktNats "ai-tutoring-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const masteryTopicName = "OBJECTIVE_MASTERY"

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	ObjectiveController  controller.IObjectiveController
	SessionController    controller.ISessionController
	AssessmentController controller.IAssessmentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
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

	// 3. Infrastructure
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	catalogCache := memory.NewCatalogCache()

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 4. Services
	publisherService := service.NewPublisherService(masteryTopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, masteryTopicName, catalogCache)

	authService := service.NewAuthService(uowFactory, natsPub, cfg.Auth.JWTSecret)
	userService := service.NewUserService(uowFactory, catalogCache)
	objectiveService := service.NewObjectiveService(uowFactory, catalogCache)
	sessionService := service.NewSessionService(uowFactory, catalogCache)
	assessmentService := service.NewAssessmentService(
		uowFactory,
		llmProvider,
		publisherService,
		natsPub,
		sysLogger,
		time.Duration(cfg.Ai.LLMTimeoutSeconds)*time.Second,
	)

	// 5. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService),
		ObjectiveController:  controller.NewObjectiveController(objectiveService),
		SessionController:    controller.NewSessionController(sessionService),
		AssessmentController: controller.NewAssessmentController(assessmentService),
		ConsumerService:      consumerService,
		Logger:               sysLogger,
	}
}
