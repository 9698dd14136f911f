package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/omg-lab/omg-backend/internal/auth"
	"github.com/omg-lab/omg-backend/internal/config"
	apihttp "github.com/omg-lab/omg-backend/internal/delivery/http"
	"github.com/omg-lab/omg-backend/internal/messaging"
	"github.com/omg-lab/omg-backend/internal/messaging/kafka"
	"github.com/omg-lab/omg-backend/internal/repository/postgres"
	"github.com/omg-lab/omg-backend/internal/service"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg := config.Load()

	// --- Database ---
	db, err := postgres.InitDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to init database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.SeedClientes(db); err != nil {
		slog.Error("Failed to seed clientes", "err", err)
		os.Exit(1)
	}

	// --- Repositories ---
	clienteRepo := postgres.NewClienteRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	pedidoRepo := postgres.NewPedidoRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)

	// --- Messaging (optional) ---
	var publisher messaging.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers)
		slog.Info("Kafka publisher enabled", "brokers", cfg.KafkaBrokers)
	}

	// --- Services ---
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	clienteSvc := service.NewClienteService(clienteRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, eventRepo, clienteSvc, catalogSvc, publisher)
	authSvc := service.NewAuthService(usuarioRepo, tokens)

	// --- HTTP API ---
	handler := apihttp.NewHandler(pedidoSvc, authSvc, tokens, clienteRepo, catalogRepo)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: apihttp.EnableCORS(apihttp.LogRequests(mux)),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	httpServer.Shutdown(context.Background())
}
