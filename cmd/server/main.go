package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/sswm/waste-admin-api/internal/config"
	"github.com/sswm/waste-admin-api/internal/database"
	"github.com/sswm/waste-admin-api/internal/handler"
	"github.com/sswm/waste-admin-api/internal/middleware"
	"github.com/sswm/waste-admin-api/internal/obs"
	"github.com/sswm/waste-admin-api/internal/queue"
	"github.com/sswm/waste-admin-api/internal/router"
	"github.com/sswm/waste-admin-api/internal/service"
)

func main() {
	// .env is optional; in containers configuration arrives via real env vars.
	_ = godotenv.Load()

	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Env == "dev" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetLevel(logrus.DebugLevel)
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable; response cache and rate limiting disabled")
	}

	authSvc := service.NewAuthService(db, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	deps := router.Deps{
		JWTSecret: cfg.JWTSecret,
		Auth:      handler.NewAuthHandler(authSvc, cfg.AccessTTL, cfg.RefreshTTL, cfg.Env == "prod"),
		Health:    handler.NewHealthHandler(db),
		Block: router.BlockHandlers{
			Dashboard:   handler.NewDashboardHandler(service.NewDashboardService(db)),
			Vehicles:    handler.NewVehicleHandler(service.NewVehicleService(db)),
			DumpYards:   handler.NewDumpYardHandler(service.NewDumpYardService(db)),
			LocalBodies: handler.NewLocalBodyHandler(service.NewLocalBodyService(db, cfg.BcryptCost)),
			Reports:     handler.NewBlockReportHandler(service.NewBlockReportService(db)),
		},
		District: router.DistrictHandlers{
			Vehicles:    handler.NewDistrictVehicleHandler(service.NewDistrictVehicleService(db)),
			DumpSites:   handler.NewDistrictDumpSiteHandler(service.NewDistrictDumpSiteService(db)),
			BlockAdmins: handler.NewDistrictBlockAdminHandler(service.NewDistrictBlockAdminService(db, cfg.BcryptCost)),
			LocalBodies: handler.NewDistrictLocalBodyHandler(service.NewDistrictLocalBodyService(db)),
			Reports:     handler.NewDistrictReportHandler(service.NewDistrictReportService(db)),
			Waste:       handler.NewDistrictWasteHandler(service.NewDistrictWasteService(db)),
		},
		GP: router.GPHandlers{
			Dashboard:   handler.NewGPDashboardHandler(service.NewGPDashboardService(db)),
			Collectors:  handler.NewGPCollectorHandler(service.NewGPCollectorService(db, cfg.BcryptCost)),
			Households:  handler.NewHouseholdHandler(service.NewHouseholdService(db)),
			Routes:      handler.NewGPRouteHandler(service.NewGPRouteService(db)),
			Reports:     handler.NewGPReportHandler(service.NewGPReportService(db)),
			Segregation: handler.NewGPSegregationHandler(service.NewGPSegregationService(db)),
			Tracking:    handler.NewGPCollectionTrackingHandler(service.NewGPCollectionTrackingService(db)),
			Vendors:     handler.NewGPVendorHandler(service.NewGPVendorService(db)),
			DumpSites:   handler.NewGPDumpMonitoringHandler(service.NewGPDumpMonitoringService(db)),
		},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(obs.Metrics())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewResponseCache(config.LoadCacheConfig(), rdb))

	router.Register(e, deps)

	// Activity feed consumer runs for the life of the process and survives
	// broker restarts on its own.
	go queue.StartActivityConsumer()

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("server starting")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
