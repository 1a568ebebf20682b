package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tyltyhub/internal/config"
	"tyltyhub/internal/database"
	"tyltyhub/internal/middleware"
	"tyltyhub/internal/modules/lead"
	"tyltyhub/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	leadRepo := repository.NewLeadRepository(db)
	leadService := lead.NewService(leadRepo)
	leadHandler := lead.NewHandler(leadService, cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitMax, cfg.RateLimitWindow))
	leadHandler.RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Rota não encontrada",
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Servidor rodando na porta %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Printf("db close error: %v", err)
	} else {
		log.Println("Banco de dados fechado")
	}
}
