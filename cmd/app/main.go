package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/config"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/db"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/logging"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/middleware"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/repository"
	"github.com/Magneto-Freelance/magneto-freelance-back/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// best-effort: if no .env exists, continue with real env
	_ = godotenv.Load()

	lg, err := logging.Init(logging.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()
	sugar := lg.Sugar()

	cfg, err := config.FromEnv()
	if err != nil {
		sugar.Fatalf("config: %v", err)
	}
	if cfg.InsecureSecret {
		sugar.Warn("JWT_SECRET not set, using development secret; do not deploy this to production")
	}

	// ======================
	// INFRA
	// ======================
	store, err := db.Connect(cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		sugar.Fatalf("mongo connect: %v", err)
	}
	sugar.Infow("connected to mongo", "database", cfg.MongoDatabase)

	// ======================
	// REPOSITORIES
	// ======================
	postulantRepo := repository.NewPostulantRepository(store.Postulants)
	companyRepo := repository.NewCompanyRepository(store.Companies)
	offerRepo := repository.NewOfferRepository(store.Offers)
	lookup := repository.NewPrincipalLookup(postulantRepo, companyRepo)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(lookup)
	postulantSvc := services.NewPostulantService(postulantRepo, authSvc)
	companySvc := services.NewCompanyService(companyRepo, authSvc)
	offerSvc := services.NewOfferService(offerRepo)
	tokens := middleware.NewJWT([]byte(cfg.JWTSecret))

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := e.Group("")

	registerAuthRoutes(api, authSvc, tokens)
	registerPostulantRoutes(api, postulantSvc)
	registerCompanyRoutes(api, companySvc)
	registerOfferRoutes(api, offerSvc)

	// ======================
	// SERVER
	// ======================
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()
	sugar.Infow("listening", "port", cfg.Port)

	<-ctx.Done()
	sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		sugar.Warnf("mongo disconnect failed: %v", err)
	}
}
