package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/hashicorp/go-hclog"
	"github.com/nicholasjackson/env"

	"github.com/kazeph/storefront-api/internal/dispatch"
	"github.com/kazeph/storefront-api/internal/events"
	"github.com/kazeph/storefront-api/internal/repository"
	"github.com/kazeph/storefront-api/internal/service"
	httpTransport "github.com/kazeph/storefront-api/internal/transport/http"
	websocketTransport "github.com/kazeph/storefront-api/internal/transport/websocket"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	businessWhatsApp = env.String("BUSINESS_WHATSAPP", false,
		"639171234567", "WhatsApp number messaging orders are addressed to (digits only, no +)")
	formEndpoint = env.String("FORM_ENDPOINT", false,
		"", "Optional remote endpoint receiving direct form order submissions")
)

func main() {
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "storefront-api",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Event bus shared between the order service and the websocket stream
	eventBus := events.NewEventBus[any]()

	// Read-only product catalog
	catalog := repository.NewMemoryCatalog()

	// Dispatch router for the two order channels
	router := dispatch.NewRouter(*businessWhatsApp, *formEndpoint, logger.Named("dispatch"))

	cs := service.NewCatalogService(catalog, logger.Named("catalog-service"))
	ords := service.NewOrderService(catalog, router, eventBus, logger.Named("order-service"))

	// HTTP handlers
	sh := httpTransport.NewStorefrontHandler(cs, ords, logger.Named("http-handler"))

	// WebSocket handler streaming order events
	wh := websocketTransport.NewHandler(
		logger.Named("websocket-handler"),
		eventBus,
	)

	muxRouter := httpTransport.NewRouter(sh, logger, wh)

	// Recover from handler panics instead of dropping the connection
	handler := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(standardLogger),
	)(muxRouter)

	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      handler,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)
}
