package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	websocketTransport "github.com/kazeph/storefront-api/internal/transport/websocket"
)

func NewRouter(
	sh *StorefrontHandler,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
) *mux.Router {
	router := mux.NewRouter()

	mw := NewMiddleware(logger, nil) // nil for default CORS config

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.CORSMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	router.HandleFunc("/api/health", sh.Health).Methods("GET")
	router.HandleFunc("/api/products", sh.GetProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", sh.GetProductByID).Methods("GET")
	router.HandleFunc("/api/checkout", sh.Checkout).Methods("POST")
	router.HandleFunc("/api/orders", sh.PlaceOrder).Methods("POST")
	router.HandleFunc("/ws", wsh.HandleWebSocket).Methods("GET")

	// Swagger UI and specification routes
	_, filename, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filename)                        // .../internal/transport/http
	rootDir := filepath.Join(basePath, "..", "..", "..")      // navigate up to the module root
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml")

	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	return router
}
