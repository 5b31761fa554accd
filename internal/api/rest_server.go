package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/annel0/voxel-physics/internal/middleware"
	"github.com/annel0/voxel-physics/internal/storage"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world"
	"github.com/annel0/voxel-physics/internal/world/block"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// RestServer представляет REST API сервер игрового мира
type RestServer struct {
	router      *gin.Engine
	worldMgr    *world.WorldManager
	landingRepo storage.LandingRepo
	port        string
	startTime   time.Time
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port        string               // порт для запуска сервера
	WorldMgr    *world.WorldManager  // менеджер мира
	LandingRepo storage.LandingRepo  // журнал приземлений (может быть nil)
	Registry    *prometheus.Registry // регистр метрик для /metrics
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	if config.Registry != nil {
		promMw := middleware.NewPrometheusMiddleware("rest_api", config.Registry)
		router.Use(promMw.Handler())
		promMw.RegisterMetricsEndpoint(router)
	}

	server := &RestServer{
		router:      router,
		worldMgr:    config.WorldMgr,
		landingRepo: config.LandingRepo,
		port:        config.Port,
		startTime:   time.Now(),
	}

	// Настраиваем маршруты
	server.setupRoutes()

	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	// Middleware для CORS
	rs.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Группа API
	api := rs.router.Group("/api")
	{
		api.GET("/status", rs.handleStatus)

		blocks := api.Group("/world")
		{
			blocks.GET("/block", rs.handleGetBlock)
			blocks.POST("/block", rs.handlePlaceBlock)
			blocks.DELETE("/block", rs.handleBreakBlock)
		}

		physics := api.Group("/physics")
		{
			physics.GET("/landings", rs.handleLandings)
		}
	}

	// Health check
	rs.router.GET("/health", rs.handleHealth)
}

// PlaceBlockRequest представляет запрос на установку блока
type PlaceBlockRequest struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	Block string `json:"block" binding:"required"` // полное имя вида "core:sand"
}

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// handleStatus возвращает статистику симуляции мира
func (rs *RestServer) handleStatus(c *gin.Context) {
	stats := map[string]interface{}{
		"tick":        rs.worldMgr.CurrentTick(),
		"chunks":      rs.worldMgr.ChunkCount(),
		"entities":    rs.worldMgr.Entities().Count(),
		"uptime":      time.Since(rs.startTime).Round(time.Second).String(),
		"server_time": time.Now().Unix(),
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Статистика получена",
		Data:    stats,
	})
}

// handleGetBlock возвращает блок по координатам из query-параметров x, y, z
func (rs *RestServer) handleGetBlock(c *gin.Context) {
	pos, ok := rs.parseCoords(c)
	if !ok {
		return
	}

	api := rs.worldMgr.BlockAPI()
	id := api.GetBlockID(pos)

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Блок получен",
		Data: map[string]interface{}{
			"pos":      pos,
			"id":       id,
			"name":     block.NameOf(id),
			"metadata": api.CaptureBlockMetadata(pos),
		},
	})
}

// handlePlaceBlock устанавливает блок с проверкой устойчивости.
// При отказе возвращает причину в поле reason.
func (rs *RestServer) handlePlaceBlock(c *gin.Context) {
	var req PlaceBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: "Неверный формат запроса: " + err.Error(),
		})
		return
	}

	id, exists := block.GetByName(req.Block)
	if !exists {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: fmt.Sprintf("Неизвестный блок: %s", req.Block),
		})
		return
	}

	pos := vec.Vec3{X: req.X, Y: req.Y, Z: req.Z}
	placed, reason := rs.worldMgr.PlaceBlock(pos, id)
	if !placed {
		c.JSON(http.StatusConflict, GenericResponse{
			Success: false,
			Message: "Установка блока отклонена",
			Data: map[string]interface{}{
				"pos":    pos,
				"block":  req.Block,
				"reason": reason,
			},
		})
		return
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Блок установлен",
		Data: map[string]interface{}{
			"pos":   pos,
			"block": req.Block,
		},
	})
}

// handleBreakBlock удаляет блок по координатам из query-параметров
func (rs *RestServer) handleBreakBlock(c *gin.Context) {
	pos, ok := rs.parseCoords(c)
	if !ok {
		return
	}

	rs.worldMgr.BreakBlock(pos)

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Блок удален",
		Data:    map[string]interface{}{"pos": pos},
	})
}

// handleLandings возвращает последние записи журнала приземлений
func (rs *RestServer) handleLandings(c *gin.Context) {
	if rs.landingRepo == nil {
		c.JSON(http.StatusServiceUnavailable, GenericResponse{
			Success: false,
			Message: "Журнал приземлений не настроен",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 1000 {
		limit = 50
	}

	records, err := rs.landingRepo.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, GenericResponse{
			Success: false,
			Message: "Ошибка чтения журнала: " + err.Error(),
		})
		return
	}

	total, _ := rs.landingRepo.Count(c.Request.Context())

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Журнал приземлений",
		Data: map[string]interface{}{
			"landings": records,
			"count":    len(records),
			"total":    total,
		},
	})
}

// handleHealth проверка состояния сервера
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// parseCoords извлекает координаты x, y, z из query-параметров
func (rs *RestServer) parseCoords(c *gin.Context) (vec.Vec3, bool) {
	x, errX := strconv.Atoi(c.Query("x"))
	y, errY := strconv.Atoi(c.Query("y"))
	z, errZ := strconv.Atoi(c.Query("z"))
	if errX != nil || errY != nil || errZ != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: "Требуются целочисленные параметры x, y, z",
		})
		return vec.Vec3{}, false
	}
	return vec.Vec3{X: x, Y: y, Z: z}, true
}

// Start запускает REST сервер
func (rs *RestServer) Start() error {
	return rs.router.Run(rs.port)
}
