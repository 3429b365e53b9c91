package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createOfferHandler "github.com/salaluna/offer-service/internal/api/handlers/create_offer"
	discardOfferHandler "github.com/salaluna/offer-service/internal/api/handlers/discard_offer"
	getCatalogHandler "github.com/salaluna/offer-service/internal/api/handlers/get_catalog"
	getOfferHandler "github.com/salaluna/offer-service/internal/api/handlers/get_offer"
	listClientOffersHandler "github.com/salaluna/offer-service/internal/api/handlers/list_client_offers"
	previewOfferHandler "github.com/salaluna/offer-service/internal/api/handlers/preview_offer"
	resolveAddonsHandler "github.com/salaluna/offer-service/internal/api/handlers/resolve_addons"
	submitOfferHandler "github.com/salaluna/offer-service/internal/api/handlers/submit_offer"
	validateStepHandler "github.com/salaluna/offer-service/internal/api/handlers/validate_step"
	"github.com/salaluna/offer-service/internal/api/middleware"
	"github.com/salaluna/offer-service/internal/config"
	offerRepo "github.com/salaluna/offer-service/internal/infra/storage/offer"
	catalogClient "github.com/salaluna/offer-service/internal/integrations/catalogservice"
	pricingClient "github.com/salaluna/offer-service/internal/integrations/pricingservice"
	catalogService "github.com/salaluna/offer-service/internal/service/catalog"
	offersService "github.com/salaluna/offer-service/internal/service/offers"
	previewOfferUC "github.com/salaluna/offer-service/internal/usecase/preview_offer"
	resolveAddonsUC "github.com/salaluna/offer-service/internal/usecase/resolve_addons"
	submitOfferUC "github.com/salaluna/offer-service/internal/usecase/submit_offer"
	validateStepUC "github.com/salaluna/offer-service/internal/usecase/validate_step"
	"github.com/salaluna/offer-service/pkg/logger"
	"github.com/salaluna/offer-service/pkg/metrics"
	"github.com/salaluna/offer-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SalaLuna-OfferService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Integration clients
	catClient := catalogClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("CatalogService client initialized (%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	var pricing submitOfferUC.PricingServiceClient
	if cfg.PricingService.Enabled {
		pricing = pricingClient.NewClient(
			cfg.PricingService.URL,
			time.Duration(cfg.PricingService.Timeout)*time.Second,
			log,
		)
		log.Info("PricingService client initialized (%s, timeout=%ds)",
			cfg.PricingService.URL, cfg.PricingService.Timeout)
	} else {
		pricing = pricingClient.NewDisabledClient(log)
		log.Info("PricingService disabled, offers will carry advisory totals")
	}

	// Repositories and transaction manager
	offerRepository := offerRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services
	catalogSvc := catalogService.NewService(catClient, log)
	offersSvc := offersService.NewService(offerRepository, catalogSvc, log)

	// Use cases
	previewUseCase := previewOfferUC.NewUseCase(catalogSvc, log)
	resolveUseCase := resolveAddonsUC.NewUseCase(catalogSvc, log)
	validateUseCase := validateStepUC.NewUseCase(catalogSvc, log)
	submitUseCase := submitOfferUC.NewUseCase(offerRepository, catalogSvc, pricing, txMgr, log)

	// Handlers
	previewOffer := previewOfferHandler.NewHandler(previewUseCase, log)
	resolveAddons := resolveAddonsHandler.NewHandler(resolveUseCase, log)
	validateStep := validateStepHandler.NewHandler(validateUseCase, log)
	createOffer := createOfferHandler.NewHandler(offersSvc, log)
	getOffer := getOfferHandler.NewHandler(offersSvc, log)
	listClientOffers := listClientOffersHandler.NewHandler(offersSvc, log)
	submitOffer := submitOfferHandler.NewHandler(submitUseCase, log)
	discardOffer := discardOfferHandler.NewHandler(offersSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Stateless engine operations
	protected.HandleFunc("/offers/preview", previewOffer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/offers/addons/resolve", resolveAddons.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/offers/steps/validate", validateStep.Handle).Methods(http.MethodPost)

	// Offer lifecycle
	protected.HandleFunc("/offers", createOffer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/offers/{offerId}", getOffer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/offers/{offerId}/submit", submitOffer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/offers/{offerId}/discard", discardOffer.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/offers", listClientOffers.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
