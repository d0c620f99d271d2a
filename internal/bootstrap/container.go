package bootstrap

import (
	"log"
	"time"

	"anichat-be/internal/config"
	"anichat-be/internal/controller"
	"anichat-be/internal/pkg/logger"
	"anichat-be/internal/repository/memory"
	"anichat-be/internal/repository/unitofwork"
	"anichat-be/internal/service"
	"anichat-be/pkg/chatbot"
	"anichat-be/pkg/llm"
	"anichat-be/pkg/llm/deepseek"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ChatbotController controller.IChatbotController

	Logger logger.ILogger
}

// NewContainer wires the dependency graph. A nil db selects the in-memory
// storage variant; everything above the repository factory is identical for
// both drivers.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
		log.Println("[INFO] Using Storage Driver: POSTGRES")
	} else {
		uowFactory = memory.NewRepositoryFactory()
		log.Println("[INFO] Using Storage Driver: MEMORY")
	}

	// 2. Upstream AI Client
	var llmProvider llm.LLMProvider
	if cfg.Ai.DeepSeekAPIKey != "" {
		llmProvider = deepseek.NewDeepSeekProvider(
			cfg.Ai.DeepSeekAPIKey,
			cfg.Ai.DeepSeekBaseURL,
			cfg.Ai.Model,
		)
		log.Printf("[INFO] Using LLM Provider: DEEPSEEK (%s)", cfg.Ai.Model)
	} else {
		log.Println("[WARN] DEEPSEEK_API_KEY is not set, assistant replies are degraded")
	}

	assistant := chatbot.NewAssistant(
		llmProvider,
		llmProvider != nil,
		cfg.Ai.HistoryWindow,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		sysLogger,
	)

	// 3. Services
	userService := service.NewUserService(uowFactory)
	chatService := service.NewChatService(uowFactory, assistant, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(userService),
		ChatbotController: controller.NewChatbotController(chatService),
		Logger:            sysLogger,
	}
}
