package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ltnguyen/folio/internal/handlers"
	"github.com/ltnguyen/folio/internal/logger"
	"github.com/ltnguyen/folio/internal/services"
	"github.com/ltnguyen/folio/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	st, err := store.Open(store.NewConfig())
	if err != nil {
		zapLogger.Fatal("failed to open store", zap.Error(err))
	}
	defer st.Close()

	if err := st.Health(); err != nil {
		zapLogger.Fatal("store health check failed", zap.Error(err))
	}
	zapLogger.Info("store opened")

	// Initialize services and handlers
	valuationService := services.NewValuationService(zapLogger)
	valuationHandler := handlers.NewValuationHandler(valuationService, st, zapLogger)
	ledgerHandler := handlers.NewLedgerHandler(st, zapLogger)

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "folio",
		})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/valuation", valuationHandler.HandleValuate).Methods(http.MethodPost)
	api.HandleFunc("/ledger", ledgerHandler.HandleBuildLedger).Methods(http.MethodPost)
	api.HandleFunc("/transactions", ledgerHandler.HandleCreateTransactions).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id}/valuation", valuationHandler.HandleAccountValuation).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{id}/ledger", ledgerHandler.HandleAccountLedger).Methods(http.MethodGet)

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, req)
		})
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, corsHandler(r)); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
