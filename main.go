package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maps-gateway/background"
	"maps-gateway/controller"
	"maps-gateway/infra"
	"maps-gateway/metrics"
	appMiddleware "maps-gateway/middleware"
	"maps-gateway/service"
	"maps-gateway/utils"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Port   int    `help:"服務監聽端口" short:"p" default:"8000"`
	Config string `help:"設定檔路徑" short:"c" default:"config.yml"`
}

type AppServices struct {
	MongoDB *infra.MongoDB
	Redis   *infra.Redis
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if err := infra.LoadConfig(options.Config); err != nil {
			log.Fatal().Err(err).Str("path", options.Config).Msg("讀取設定檔失敗")
		}

		infra.InitLogger(infra.AppConfig.App.AppVersion)

		if err := infra.AppConfig.Validate(); err != nil {
			log.Fatal().Err(err).Msg("設定檔驗證失敗")
		}
		location, _ := utils.LoadLocation(infra.AppConfig.App.DefaultTimeZone)

		if err := appMiddleware.InitPrometheusMetrics(log.Logger); err != nil {
			log.Error().Err(err).Msg("Prometheus metrics 初始化失敗，將繼續運行")
		}
		if registry := appMiddleware.GetPrometheusRegistry(); registry != nil {
			if err := metrics.InitServiceMetrics(registry); err != nil {
				log.Error().Err(err).Msg("Service metrics 初始化失敗，將繼續運行")
			}
		}

		otelConfig := appMiddleware.OtelConfig{
			ServiceName:     infra.ServiceName,
			ServiceVersion:  infra.AppConfig.App.AppVersion,
			Environment:     os.Getenv("ENV"),
			OTLPEndpoint:    infra.AppConfig.Otel.Endpoint,
			Enabled:         infra.AppConfig.Otel.Enabled,
			DevelopmentMode: infra.AppConfig.Otel.DevelopmentMode,
			Registry:        appMiddleware.GetPrometheusRegistry(),
		}
		otelCleanup, err := appMiddleware.InitOpenTelemetry(otelConfig, log.Logger)
		if err != nil {
			log.Error().Err(err).Msg("OpenTelemetry 初始化失敗，將繼續運行")
			otelCleanup = func() {}
		}
		infra.InitTracer()

		log.Info().
			Int("port", options.Port).
			Str("default_time_zone", location.String()).
			Msg("啟動 Maps Gateway API服務")

		services := initializeServices()

		router := chi.NewRouter()
		router.Use(middleware.Logger)
		router.Use(middleware.Recoverer)
		router.Use(middleware.RequestID)
		router.Use(middleware.Heartbeat("/ping"))

		// CORS 設定 - 允許所有來源
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "X-Trace-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		apiConfig := huma.DefaultConfig("Maps Gateway API", infra.AppConfig.App.AppVersion)
		apiConfig.Info.Description = "Google Maps 地點搜尋與路線規劃 API"

		serverURL := fmt.Sprintf("http://localhost:%d", options.Port)
		if infra.AppConfig.CertBaseURL != "" {
			serverURL = infra.AppConfig.CertBaseURL
		}
		apiConfig.Servers = []*huma.Server{
			{URL: serverURL},
		}

		api := humachi.New(router, apiConfig)
		api.UseMiddleware(appMiddleware.RequestIDMiddleware)
		api.UseMiddleware(appMiddleware.OpenTelemetryMiddleware(otelConfig, log.Logger))
		api.UseMiddleware(appMiddleware.PrometheusMiddleware(log.Logger))

		trafficUsageLogService := service.NewTrafficUsageLogService(log.Logger, services.MongoDB, services.Redis)
		if services.MongoDB != nil {
			indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
			if err := trafficUsageLogService.EnsureIndexes(indexCtx, infra.AppConfig.UsageLogRetention()); err != nil {
				log.Error().Err(err).Msg("建立使用日誌索引失敗")
			}
			cancelIndex()
		}
		googleClient := infra.NewGoogleClient(infra.GoogleConfig{
			APIKey:  infra.AppConfig.Google.APIKey,
			BaseURL: infra.AppConfig.Google.BaseURL,
		})
		googleService := service.NewGoogleMapService(log.Logger, googleClient, trafficUsageLogService, infra.AppConfig.GoogleTimeout())
		directionsService := service.NewDirectionsService(log.Logger, googleService, location)
		placesService := service.NewPlacesService(log.Logger, googleService)
		monitoringService := service.NewMonitoringService(services.MongoDB, services.Redis)

		controller.NewGoogleMapController(log.Logger, directionsService, placesService).RegisterRoutes(api)
		controller.NewTrafficUsageLogController(log.Logger, trafficUsageLogService).RegisterRoutes(api)
		controller.NewMonitoringController(log.Logger, monitoringService).RegisterRoutes(api)

		router.Handle("/metrics", appMiddleware.GetStandardPrometheusHandler())

		bgCtx, stopBackground := context.WithCancel(context.Background())
		go background.NewMetricsUpdater(log.Logger, monitoringService, trafficUsageLogService).Start(bgCtx)

		hooks.OnStart(func() {
			log.Info().
				Str("docs_url", fmt.Sprintf("%s/docs", serverURL)).
				Str("openapi_url", fmt.Sprintf("%s/openapi.json", serverURL)).
				Msg("API文檔已啟用")
			server := &http.Server{
				Addr:              fmt.Sprintf(":%d", options.Port),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("服務器啟動失敗")
				}
			}()
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			log.Info().Msg("正在關閉服務器...")
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("服務器關閉錯誤")
			}
			stopBackground()
			log.Info().Msg("正在關閉 OpenTelemetry...")
			otelCleanup()
			cleanupServices(services)
			log.Info().Msg("服務器已關閉")
		})
	})
	cli.Run()
}

// initializeServices MongoDB 與 Redis 都是選用的，連線失敗時繼續運行
func initializeServices() *AppServices {
	services := &AppServices{}

	if infra.AppConfig.MongoDB.URI != "" {
		mongoDB, err := infra.NewMongoDB(infra.MongoConfig{
			URI:            infra.AppConfig.MongoDB.URI,
			Database:       infra.AppConfig.MongoDB.Database,
			ConnectTimeout: time.Duration(infra.AppConfig.MongoDB.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			log.Error().Err(err).Msg("MongoDB連接失敗 (繼續運行，不記錄使用日誌)")
		} else {
			services.MongoDB = mongoDB
		}
	}

	if infra.AppConfig.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(infra.RedisConfig{
			Addr:     infra.AppConfig.Redis.Addr,
			Password: infra.AppConfig.Redis.Password,
			DB:       infra.AppConfig.Redis.DB,
		})
		if err != nil {
			log.Error().Err(err).Msg("Redis連接失敗 (繼續運行，不記錄每日用量)")
		} else {
			services.Redis = redisClient
		}
	}

	return services
}

func cleanupServices(services *AppServices) {
	if services.MongoDB != nil {
		if err := services.MongoDB.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("MongoDB關閉錯誤")
		}
	}

	if services.Redis != nil {
		if err := services.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("Redis關閉錯誤")
		}
	}
}
