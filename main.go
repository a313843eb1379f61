package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cosmind-backend/config"
	"cosmind-backend/controller"
	"cosmind-backend/dao"
	"cosmind-backend/logic"
	"cosmind-backend/middleware"
	"cosmind-backend/models"
	"cosmind-backend/pkg"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: cosmind-backend <config.yaml>")
	}
	cfg, err := config.LoadConfig(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load config from %s: %v", os.Args[1], err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.HistoryEntry{},
		&models.PurchaseRecord{},
		&models.ChatMessage{},
		&models.ActivityRecord{},
	); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize external collaborators
	kvStore, err := pkg.NewKVStore(cfg.Cache.Path)
	if err != nil {
		logger.Fatal("failed to open cache store", zap.Error(err))
	}
	defer kvStore.Close()

	llmClient := pkg.NewLLMClient(
		&http.Client{Timeout: cfg.LLMTimeout()},
		cfg.LLM.APIKey,
		cfg.LLM.BaseURL,
		cfg.LLM.Model,
	)

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	historyDAO := dao.NewHistoryDAO(db)
	purchaseDAO := dao.NewPurchaseDAO(db)
	chatDAO := dao.NewChatDAO(db)
	activityDAO := dao.NewActivityDAO(db)

	// Initialize Logics
	ledger := logic.NewCreditLedger(userDAO)
	workflow := logic.NewFeatureWorkflow(ledger, llmClient, historyDAO, chatDAO, activityDAO, logger)
	authLogic := logic.NewAuthLogic(userDAO, cfg.Auth.Secret, cfg.Auth.ExpHour)
	purchaseLogic := logic.NewPurchaseLogic(purchaseDAO, ledger, logger)
	historyLogic := logic.NewHistoryLogic(historyDAO)
	transitLogic := logic.NewTransitLogic(workflow, kvStore, logger)

	// Initialize Controllers
	userCtrl := controller.NewUserController(authLogic)
	featureCtrl := controller.NewFeatureController(workflow, transitLogic)
	historyCtrl := controller.NewHistoryController(historyLogic)
	chatCtrl := controller.NewChatController(chatDAO)
	shopCtrl := controller.NewShopController(purchaseLogic, activityDAO)

	// Setup Gin router
	r := gin.Default()
	auth := middleware.Auth(cfg.Auth.Secret)

	r.POST("/auth/register", userCtrl.Register)
	r.POST("/auth/login", userCtrl.Login)
	r.GET("/me", auth, userCtrl.Me)
	r.POST("/features/:kind", auth, featureCtrl.Run)
	r.GET("/transits", auth, featureCtrl.Transits)
	r.GET("/history/:kind", auth, historyCtrl.List)
	r.DELETE("/history/:kind/:id", auth, historyCtrl.Remove)
	r.DELETE("/history/:kind", auth, historyCtrl.Clear)
	r.GET("/chat/messages", auth, chatCtrl.Messages)
	r.DELETE("/chat/messages", auth, chatCtrl.Clear)
	r.GET("/shop/packages", shopCtrl.Packages)
	r.POST("/shop/checkout", auth, shopCtrl.Checkout)
	r.GET("/shop/purchases", auth, shopCtrl.Purchases)
	r.GET("/activity", auth, shopCtrl.Activity)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
