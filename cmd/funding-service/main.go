package main

import (
	"fmt"
	"os"

	"github.com/sponsoracareer/funding-service/internal/auth"
	"github.com/sponsoracareer/funding-service/internal/config"
	"github.com/sponsoracareer/funding-service/internal/db"
	"github.com/sponsoracareer/funding-service/internal/excel"
	httphandler "github.com/sponsoracareer/funding-service/internal/http"
	"github.com/sponsoracareer/funding-service/internal/http/middleware"
	"github.com/sponsoracareer/funding-service/internal/logger"
	"github.com/sponsoracareer/funding-service/internal/mail"
	"github.com/sponsoracareer/funding-service/internal/pdf"
	"github.com/sponsoracareer/funding-service/internal/repository"
	"github.com/sponsoracareer/funding-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg.DB.DSN, cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns, cfg.DB.ConnMaxLifetime, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	userRepo := repository.NewUserRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	offerRepo := repository.NewOfferRepository(database)
	contractRepo := repository.NewContractRepository(database)
	milestoneRepo := repository.NewMilestoneRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)

	notificationService := service.NewNotificationService(notificationRepo)
	profileService := service.NewProfileService(profileRepo)
	offerService := service.NewOfferService(offerRepo, contractRepo, userRepo, profileRepo, notificationService)
	contractService := service.NewContractService(contractRepo, userRepo, profileRepo, notificationService)
	milestoneService := service.NewMilestoneService(milestoneRepo, profileRepo, notificationService)

	mailSender := mail.NewSender(cfg.Mail.ResendAPIKey, cfg.Mail.FromAddress, cfg.Mail.BaseURL, log)
	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	authService := service.NewAuthService(userRepo, profileService, notificationService, mailSender, tokenIssuer, log)

	handler := httphandler.NewHandler(
		authService,
		profileService,
		offerService,
		contractService,
		milestoneService,
		notificationService,
		pdf.NewGenerator(),
		excel.NewGenerator(),
		log,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting funding service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
