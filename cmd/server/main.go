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

	"github.com/annel0/voxel-physics/internal/api"
	"github.com/annel0/voxel-physics/internal/config"
	"github.com/annel0/voxel-physics/internal/eventbus"
	"github.com/annel0/voxel-physics/internal/logging"
	"github.com/annel0/voxel-physics/internal/storage"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world"
	"github.com/annel0/voxel-physics/internal/world/block"
	"github.com/annel0/voxel-physics/internal/world/block/implementations"
	"github.com/annel0/voxel-physics/internal/world/physics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию ENV GAME_CONFIG)")
	flag.Parse()

	// Инициализируем систему логирования (используем новый API)
	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🎮 Запуск сервера мира с физикой падающих блоков...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		logging.Info("Конфигурация не задана, используются значения по умолчанию")
		cfg = &config.Config{}
	}

	restPort := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	logging.Info("📡 Конфигурация сервера: REST API=%s, seed=%d", restPort, cfg.World.GetSeed())

	// === EVENT BUS ===
	var bus eventbus.EventBus
	if cfg.EventBus.URL != "" {
		retention := time.Duration(cfg.EventBus.Retention) * time.Hour
		jsBus, err := eventbus.NewJetStreamBus(cfg.EventBus.URL, cfg.EventBus.Stream, retention)
		if err != nil {
			logging.Warn("⚠️ JetStream недоступен (%v), используется шина в памяти", err)
			bus = eventbus.NewMemoryBus(1024)
		} else {
			bus = jsBus
		}
	} else {
		bus = eventbus.NewMemoryBus(1024)
	}
	eventbus.Init(bus)

	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Warn("Не удалось запустить лог-слушатель шины: %v", err)
	}

	// === МЕТРИКИ ===
	registry := prometheus.NewRegistry()
	physics.RegisterMetrics(registry)

	busMetrics := eventbus.NewMetricsExporter(bus, registry)
	busMetrics.Start()
	defer busMetrics.Stop()

	// Отдельный порт метрик для Prometheus-скрейпера; тот же регистр
	// доступен и через REST-роутер
	metricsPort := fmt.Sprintf(":%d", cfg.Server.GetMetricsPort())
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		if err := http.ListenAndServe(metricsPort, mux); err != nil {
			logging.Error("❌ Ошибка сервера метрик: %v", err)
		}
	}()
	logging.Info("📈 Метрики Prometheus зарегистрированы, порт %s", metricsPort)

	// === ОПРЕДЕЛЕНИЯ БЛОКОВ ===
	// Встроенные профили уже зарегистрированы пакетом implementations;
	// YAML-файлы из каталога перекрывают их.
	defsPath := cfg.Physics.DefsPath()
	if err := physics.LoadDefinitions(defsPath); err != nil {
		if os.IsNotExist(err) {
			logging.Warn("Каталог определений блоков %s не найден, используются встроенные профили", defsPath)
		} else {
			logging.Error("❌ Ошибка загрузки определений блоков: %v", err)
			log.Fatalf("❌ Ошибка загрузки определений блоков: %v", err)
		}
	}

	// === ХРАНИЛИЩЕ ===
	worldStorage, err := storage.NewWorldStorage(cfg.World.GetDataPath())
	if err != nil {
		logging.Error("❌ Ошибка открытия хранилища мира: %v", err)
		log.Fatalf("❌ Ошибка открытия хранилища мира: %v", err)
	}
	defer worldStorage.Close()

	// Журнал приземлений: Redis при наличии адреса, иначе в памяти
	var landingRepo storage.LandingRepo
	if cfg.Storage.RedisAddr != "" {
		redisCfg := storage.DefaultRedisConfig()
		redisCfg.Addr = cfg.Storage.RedisAddr
		redisCfg.Password = cfg.Storage.RedisPassword
		redisCfg.DB = cfg.Storage.RedisDB
		repo, err := storage.NewRedisLandingRepo(redisCfg)
		if err != nil {
			logging.Warn("⚠️ Redis недоступен (%v), журнал приземлений в памяти", err)
			landingRepo = storage.NewMemoryLandingRepo(0)
		} else {
			landingRepo = repo
		}
	} else {
		landingRepo = storage.NewMemoryLandingRepo(0)
	}
	defer landingRepo.Close()

	// === ФИЗИКА ===
	implementations.SetFallTrigger(physics.NewFallTrigger(nil, physics.NewSpawnCoordinator()))

	// === МИР ===
	worldMgr := world.NewWorldManager(cfg.World.GetSeed())
	worldMgr.SetFallingBlocksEnabled(cfg.Physics.FallingEnabled())
	worldMgr.SetStorageFunctions(worldStorage.SaveChunk, worldStorage.LoadAndApplyChunk)
	worldMgr.SetLandingRecorder(func(id block.BlockID, origin, landing vec.Vec3) {
		rec := storage.LandingRecord{
			BlockID: id,
			Origin:  origin,
			Landing: landing,
			Time:    time.Now().UTC(),
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := landingRepo.Save(ctx, rec); err != nil {
			logging.Warn("Не удалось записать приземление: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worldMgr.Run(ctx)

	// === REST API ===
	restServer := api.NewRestServer(api.Config{
		Port:        restPort,
		WorldMgr:    worldMgr,
		LandingRepo: landingRepo,
		Registry:    registry,
	})
	go func() {
		if err := restServer.Start(); err != nil {
			logging.Error("❌ Ошибка запуска REST API: %v", err)
		}
	}()

	logging.Info("✅ Все сервисы запущены")
	logging.Info("   🌐 REST API: http://localhost%s", restPort)
	logging.Info("   📊 Метрики: http://localhost%s/metrics", metricsPort)
	logging.Info("   ❤️  Health check: http://localhost%s/health", restPort)
	logging.Info("💡 Примеры использования REST API:")
	logging.Info("   curl http://localhost%s/api/status", restPort)
	logging.Info("   curl -X POST http://localhost%s/api/world/block -H 'Content-Type: application/json' -d '{\"x\":0,\"y\":200,\"z\":0,\"block\":\"core:sand\"}'", restPort)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	// === GRACEFUL SHUTDOWN ===
	worldMgr.Stop()
	worldMgr.SaveWorld(true)

	if closer, ok := bus.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logging.Warn("Ошибка закрытия шины событий: %v", err)
		}
	}

	logging.Info("👋 Сервер успешно остановлен")
}
