package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"motodesign/internal/catalog"
	"motodesign/internal/contact"
	"motodesign/internal/i18n"
	"motodesign/internal/proxy"
	"motodesign/pkg/config"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(log)

	airtableCfg := config.LoadAirtable()
	apiCfg := config.LoadAPI()
	features := config.LoadFeatures()
	site := config.DefaultSite()

	addr := os.Getenv("MOTODESIGN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(log))
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// The gateway talks to our own proxy endpoint, same as the browser.
	proxyURL := os.Getenv("MOTODESIGN_PROXY_URL")
	if proxyURL == "" {
		proxyURL = fmt.Sprintf("http://localhost%s/api/bikes", addr)
	}

	client := catalog.NewClient(proxyURL, apiCfg)
	cache := catalog.NewCollectionCache(client, apiCfg.CacheTTL)

	api := router.Group("/api")

	proxyHandler := proxy.NewHandler(airtableCfg, log)
	proxyHandler.RegisterRoutes(api)

	listings := catalog.NewHandler(cache, client, site, features.DefaultLanguage)
	listings.RegisterRoutes(api.Group("/listings"))
	if features.EnableFeaturedCarousel {
		api.GET("/featured", listings.Featured)
	}

	api.GET("/lang/:lang", i18n.Handler())

	contactHandler := contact.NewHandler(site.Email, features.DefaultLanguage)
	api.POST("/contact", contactHandler.Submit)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		if airtableCfg.APIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"error":  "Airtable API key not configured",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("web server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		log.Error("server error", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", "err", err)
	}
	log.Info("server stopped")
}

// requestID tags every request so log lines correlate.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
