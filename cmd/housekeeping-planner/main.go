package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/common/database"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/common/logger"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/common/mqtt"
	commonredis "github.com/Optimus825482/minibartakip2cool-sub001/internal/common/redis"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/config"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/events"
	httpapi "github.com/Optimus825482/minibartakip2cool-sub001/internal/http"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/repository"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/service"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/store"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "housekeeping-planner")
	if err != nil {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()

	loc, err := cfg.Location()
	if err != nil {
		log.Warn("Invalid PLAN_TIMEZONE, using UTC", zap.String("timezone", cfg.Plan.Timezone), zap.Error(err))
	}

	// 数据源：数据库不可用时回退到内存仓库
	var (
		db        *sql.DB
		tasks     repository.TaskSource
		turnovers repository.TurnoverSource
		floors    repository.FloorsRepository
	)
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for housekeeping-planner")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory", zap.Error(err))
		}
	}
	if db != nil {
		tasks = repository.NewPostgresTasksRepository(db)
		turnovers = repository.NewPostgresTurnoversRepository(db)
		floors = repository.NewPostgresFloorsRepository(db)
	} else {
		mem := repository.NewMemoryPlanningRepo()
		tasks, turnovers, floors = mem, mem, mem
	}
	if cfg.PMS.Enabled && cfg.PMS.BaseURL != "" {
		turnovers = repository.NewPMSTurnoverSource(cfg.PMS.BaseURL, cfg.PMS.APIKey, cfg.PMS.Timeout, log)
		log.Info("Turnover records read from PMS", zap.String("base_url", cfg.PMS.BaseURL))
	}

	// Redis：最近计划缓存 + 计划事件流
	var (
		kv        store.KV
		publisher events.PlanPublisher = events.NoopPublisher{}
	)
	redisClient := commonredis.NewRedisClient(&cfg.Redis)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := commonredis.Ping(pingCtx, redisClient); err == nil {
		kv = store.NewRedisKV(redisClient)
		publisher = events.NewStreamPlanPublisher(redisClient, cfg.Plan.EventStream, log)
	} else {
		log.Warn("Redis unavailable, plan cache and events disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	pingCancel()

	// MQTT：简报推送
	var notifier events.BriefingNotifier = events.NoopNotifier{}
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttCfg := cfg.CommonMQTT()
		if c, err := mqtt.NewClient(mqttCfg, log); err == nil {
			mqttClient = c
			notifier = events.NewMQTTBriefingNotifier(c, cfg.MQTT.TopicPrefix, c.QoS(), log)
		} else {
			log.Warn("MQTT enabled but connection failed, briefing push disabled", zap.Error(err))
		}
	}

	planService := service.NewPlanService(tasks, turnovers, floors, kv, publisher, notifier,
		service.PlanServiceOptions{
			Location: loc,
			CacheTTL: cfg.Plan.CacheTTL,
		}, log)

	router := httpapi.NewRouter(log)
	router.RegisterHealthRoute()
	router.RegisterPlanRoutes(httpapi.NewPlanHandler(planService, loc, log))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	srv := service.NewServer(cfg.HTTP.Addr, c.Handler(router), service.ServerOptions{
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("HTTP server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	_ = commonredis.Close(redisClient)
	if mqttClient != nil {
		mqttClient.Disconnect()
	}
	if db != nil {
		_ = database.Close(db)
	}
}
