package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"option-scanner/src/data"
	"option-scanner/src/models"
	"option-scanner/src/scanner"
	"option-scanner/src/utils"
)

type scanRequest struct {
	Tickers      string  `schema:"tickers,required"`
	Fast         bool    `schema:"fast"`
	RiskFreeRate float64 `schema:"risk_free_rate"`
	Seed         int64   `schema:"seed"`
}

type scanHandler struct {
	dataDir string
}

func (h *scanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req scanRequest
	if err := schema.NewDecoder().Decode(&req, r.Form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var symbols []models.StockSymbol
	for _, t := range strings.Split(req.Tickers, ",") {
		if s := models.NewStockSymbol(t); s != "" {
			symbols = append(symbols, s)
		}
	}

	if req.RiskFreeRate == 0 {
		req.RiskFreeRate = 0.05
	}

	s, err := scanner.NewScanner(data.NewCSVFetcher(h.dataDir), models.DefaultScanConfig(req.Fast), scanner.Options{
		RiskFreeRate: req.RiskFreeRate,
		Seed:         req.Seed,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	results, err := s.ScanTickers(r.Context(), symbols)
	if err != nil {
		log.Errorf("scan failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		log.Errorf("failed to encode scan results: %v", err)
	}
}

func main() {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error initializing environment variables: %v", err)
	}

	dataDir := os.Getenv("SCAN_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	router := mux.NewRouter()
	router.Handle("/scan", &scanHandler{dataDir: dataDir}).Methods(http.MethodGet)

	srv := &http.Server{
		Handler: router,
		Addr:    fmt.Sprintf(":%s", port),
	}

	log.Infof("listening on :%s", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("http: failed to listen and serve: %v", err)
	}
}
