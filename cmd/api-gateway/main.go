package main

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"go.uber.org/zap"

	"github.com/radieske/match-stats-platform/internal/shared/config"
	"github.com/radieske/match-stats-platform/internal/shared/logger"
)

func rp(to string) *httputil.ReverseProxy {
	u, _ := url.Parse(to)
	return httputil.NewSingleHostReverseProxy(u)
}

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// targets
	ingestURL := cfg.IngestURL
	queryURL := os.Getenv("QUERY_URL")
	if queryURL == "" {
		queryURL = "http://localhost:8080"
	}
	ingest := rp(ingestURL)
	query := rp(queryURL)

	mux := http.NewServeMux()

	// ingestão (ex.: /api/ingest -> ingest-service)
	mux.Handle("/api/ingest", http.StripPrefix("/api", ingest))

	// leitura (ex.: /api/v1/matches... -> query-service)
	mux.Handle("/api/", http.StripPrefix("/api", query))

	addr := ":" + cfg.HTTPPort
	log.Info("api-gateway listening",
		zap.String("addr", addr),
		zap.String("ingest", ingestURL),
		zap.String("query", queryURL),
	)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal("gateway", zap.Error(err))
	}
}
