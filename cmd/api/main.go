package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	"github.com/BruksfildServices01/barbershop-admin/internal/cache"
	"github.com/BruksfildServices01/barbershop-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-admin/internal/db"
	infraRepo "github.com/BruksfildServices01/barbershop-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
	"github.com/BruksfildServices01/barbershop-admin/internal/routes"
	"github.com/BruksfildServices01/barbershop-admin/internal/storage"
	"github.com/BruksfildServices01/barbershop-admin/internal/telemetry"
)

const serviceName = "barbershop-admin"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	seedAdmin(ctx, db, cfg)

	shutdownTracing, tracing := telemetry.Setup(cfg, serviceName)

	// ======================================================
	// INFRA OPCIONAL
	// ======================================================
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		var err error
		rdb, err = cache.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Printf("redis disabled: %v", err)
			rdb = nil
		}
	}

	var store *storage.Store
	if cfg.StorageEnabled() {
		store = storage.New(cfg)
	} else {
		log.Println("storage disabled: S3_ENDPOINT/S3_ACCESS_KEY not set")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Audit:   auditDispatcher,
		Redis:   rdb,
		Storage: store,
	})

	var handler http.Handler = r
	if tracing {
		handler = otelhttp.NewHandler(r, serviceName)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	// drena eventos pendentes antes de fechar o banco
	auditDispatcher.Close()

	if rdb != nil {
		_ = rdb.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("otel shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// seedAdmin cria o primeiro admin a partir de ADMIN_EMAIL/ADMIN_PASSWORD
func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	created, err := infraRepo.NewUserGormRepository(db).EnsureAdmin(ctx, &models.User{
		Name:         "Admin",
		Email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		PasswordHash: string(hashed),
		Role:         middleware.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if created {
		log.Printf("admin %s created", cfg.AdminEmail)
	}
}
