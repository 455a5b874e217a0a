package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"facility-monitor/internal/config"
	"facility-monitor/internal/database"
	httpapi "facility-monitor/internal/http"
	"facility-monitor/internal/logger"
	"facility-monitor/internal/repository"
	"facility-monitor/internal/service"
	"facility-monitor/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "facility-monitor")
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	// Sessions live in redis so restarts don't log everyone out; fall
	// back to process memory when redis is unreachable.
	var kv store.KV
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err == nil {
		kv = store.NewRedisKV(redisClient)
		log.Info("Redis session store enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		kv = store.NewMemoryKV()
		log.Warn("Redis unavailable, using in-memory session store", zap.Error(err))
	}

	var db *sql.DB
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for facility-monitor")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory repositories", zap.Error(err))
		}
	}

	var (
		zonesRepo     repository.ZonesRepository
		clientsRepo   repository.ClientsRepository
		contactsRepo  repository.ContactsRepository
		employeesRepo repository.EmployeesRepository
		accountsRepo  repository.AccountsRepository
		reportsRepo   repository.ReportsRepository
	)
	if db != nil {
		zonesRepo = repository.NewPostgresZonesRepository(db)
		clientsRepo = repository.NewPostgresClientsRepository(db)
		contactsRepo = repository.NewPostgresContactsRepository(db)
		employeesRepo = repository.NewPostgresEmployeesRepository(db)
		accountsRepo = repository.NewPostgresAccountsRepository(db)
		reportsRepo = repository.NewPostgresReportsRepository(db)
	} else {
		mem := repository.NewMemoryStore()
		zonesRepo = repository.NewMemoryZonesRepo(mem)
		clientsRepo = repository.NewMemoryClientsRepo(mem)
		contactsRepo = repository.NewMemoryContactsRepo(mem)
		employeesRepo = repository.NewMemoryEmployeesRepo(mem)
		accountsRepo = repository.NewMemoryAccountsRepo(mem)
		reportsRepo = repository.NewMemoryReportsRepo(mem)
	}

	// Dev bootstrap: make sure there is at least one superuser so the
	// panel is reachable on a fresh deployment.
	if cfg.SeedAdmin {
		if hash, err := service.HashPassword(cfg.AdminPassword); err == nil {
			if err := accountsRepo.UpsertSuperuser(context.Background(), "admin", hash); err != nil {
				log.Warn("Failed to seed admin account", zap.Error(err))
			}
		}
	}

	authService := service.NewAuthService(accountsRepo, log)
	zoneService := service.NewZoneService(zonesRepo, log)
	clientService := service.NewClientService(clientsRepo, contactsRepo, zonesRepo, log)
	employeeService := service.NewEmployeeService(employeesRepo, zonesRepo, log)
	reportService := service.NewReportService(reportsRepo, log)

	sessions := httpapi.NewSessions(kv, time.Duration(cfg.Session.TTLHours)*time.Hour)
	authHandler := httpapi.NewAuthHandler(authService, sessions, log)
	reportHandler := httpapi.NewReportHandler(reportService, log)
	panelHandler := httpapi.NewPanelHandler(zoneService, clientService, employeeService, log)

	router := httpapi.NewRouter(log)
	router.RegisterAuthRoutes(authHandler)
	router.RegisterReportRoutes(sessions, reportHandler)
	router.RegisterPanelRoutes(sessions, panelHandler)

	server := service.NewServer(cfg.HTTP.Addr, router, log)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()
	log.Info("facility-monitor started", zap.String("addr", cfg.HTTP.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		log.Error("Shutdown error", zap.Error(err))
	}
	if db != nil {
		db.Close()
	}
	_ = redisClient.Close()
}
