package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m-zayed5722/food-sense/internal/api"
	"github.com/m-zayed5722/food-sense/internal/catalog"
	"github.com/m-zayed5722/food-sense/internal/database"
	"github.com/m-zayed5722/food-sense/internal/llm"
	"github.com/m-zayed5722/food-sense/internal/models"
	"github.com/m-zayed5722/food-sense/internal/parser"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 9090, "Metrics server port")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	items, store, err := loadCatalog(config)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if store != nil {
		defer store.Close()
	}

	index, err := catalog.NewIndex(items, catalog.DefaultRestaurants)
	if err != nil {
		log.Fatalf("Failed to build catalog index: %v", err)
	}
	log.Printf("Catalog loaded: %d items across %d restaurants", len(items), len(index.RestaurantNames()))

	llmParser, err := initializeLLM(config, index)
	if err != nil {
		log.Fatalf("Failed to initialize LLM parser: %v", err)
	}

	var loader api.CatalogLoader
	if store != nil {
		loader = store
	}
	server := api.NewServer(index, loader, llmParser, config.JWTSecret)

	go startMetricsServer(*metricsPort)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.Router(),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", *port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// loadCatalog reads menu items from the configured database, seeding it
// with the built-in menu when empty. Without a database the built-in menu
// is used directly.
func loadCatalog(config *Config) ([]models.MenuItemTemplate, *database.Store, error) {
	if config.Database.Source == "" {
		return catalog.SampleMenu(), nil, nil
	}

	store, err := database.Open(config.Database.Dialect, config.Database.Source)
	if err != nil {
		return nil, nil, err
	}
	items, err := store.LoadCatalog(catalog.SampleMenu())
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return items, store, nil
}

func initializeLLM(config *Config, index *catalog.Index) (parser.Parser, error) {
	if !config.LLM.Enabled {
		return nil, nil
	}

	llmConfig := llm.DefaultConfig()
	if config.LLM.Model != "" {
		llmConfig.Model = config.LLM.Model
	}
	if config.LLM.APIKey != "" {
		llmConfig.APIKey = config.LLM.APIKey
	}
	if config.LLM.BaseURL != "" {
		llmConfig.BaseURL = config.LLM.BaseURL
	}
	if config.LLM.TimeoutSeconds > 0 {
		llmConfig.Timeout = time.Duration(config.LLM.TimeoutSeconds) * time.Second
	}

	return llm.NewParser(index, llmConfig)
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
