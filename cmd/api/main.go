package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/AshilyAnnMathew/TodoServer/internal/adapter/db"
	httpadapter "github.com/AshilyAnnMathew/TodoServer/internal/adapter/http"
	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/handlers"
	httpmiddleware "github.com/AshilyAnnMathew/TodoServer/internal/adapter/http/middleware"
	"github.com/AshilyAnnMathew/TodoServer/internal/adapter/identity"
	"github.com/AshilyAnnMathew/TodoServer/internal/config"
	"github.com/AshilyAnnMathew/TodoServer/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	verifier, err := identity.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentialsFile)
	if err != nil {
		logger.Fatal("failed to initialize firebase verifier", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler()
	scoper := dbadapter.NewTaskStoreScoper(db)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, verifier, scoper)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
