package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"anihub/internal/assistant"
	"anihub/internal/catalog"
	"anihub/internal/jikan"
	"anihub/internal/library"
	"anihub/pkg/kvstore"
	"anihub/pkg/utils"
)

func main() {
	cfg := utils.LoadConfig()

	store := kvstore.MustOpen(cfg.DataDSN)
	defer store.Close()

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "data": cfg.DataDSN})
	})

	api := router.Group("/api")

	// Catalog (remote, read-only)
	jikanClient := jikan.NewClient(cfg.JikanBase)
	catalog.NewHandler(jikanClient).RegisterRoutes(api)

	// Library + profile (local store)
	manager := library.NewManager(store)
	library.NewHandler(manager).RegisterRoutes(api)

	// Assistant (optional: without an API key the chat degrades to its
	// apology reply instead of being unreachable)
	var gen assistant.Generator
	gen, err := assistant.NewGemini(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("[main] assistant degraded: %v", err)
		gen = assistant.Unavailable{}
	}
	assistant.NewHandler(assistant.New(gen)).RegisterRoutes(api)

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("AniHub API server listening on %s", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
