package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nurpe/wrls-charging/internal/auth"
	"github.com/nurpe/wrls-charging/internal/config"
	"github.com/nurpe/wrls-charging/internal/db"
	"github.com/nurpe/wrls-charging/internal/excel"
	httphandler "github.com/nurpe/wrls-charging/internal/http"
	"github.com/nurpe/wrls-charging/internal/http/middleware"
	"github.com/nurpe/wrls-charging/internal/logger"
	"github.com/nurpe/wrls-charging/internal/metrics"
	"github.com/nurpe/wrls-charging/internal/pdf"
	"github.com/nurpe/wrls-charging/internal/repository"
	"github.com/nurpe/wrls-charging/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	licenceRepo := repository.NewLicenceRepository(database)
	chargeVersionRepo := repository.NewChargeVersionRepository(database)
	workflowRepo := repository.NewWorkflowRepository(database)
	agreementRepo := repository.NewAgreementRepository(database)
	transactor := repository.NewTransactor(database)

	m := metrics.New(prometheus.DefaultRegisterer)
	startMonth := cfg.Charging.FinancialYearStartMonth

	services := httphandler.Services{
		Licences:       service.NewLicenceService(licenceRepo),
		ChargeVersions: service.NewChargeVersionService(licenceRepo, chargeVersionRepo, workflowRepo, transactor, m, log),
		Workflows:      service.NewWorkflowService(licenceRepo, workflowRepo, m, log),
		Agreements:     service.NewAgreementService(licenceRepo, agreementRepo, transactor, startMonth, m, log),
		Reports: service.NewReportService(
			licenceRepo,
			chargeVersionRepo,
			agreementRepo,
			excel.NewGenerator(),
			pdf.NewGenerator(),
			startMonth,
			m,
		),
	}

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(services, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, httphandler.RouterConfig{
		Environment:        cfg.Environment,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		Gatherer:           prometheus.DefaultGatherer,
	}, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting charging service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
