package routes

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"rabota_backend/internal/config"
	"rabota_backend/internal/handlers"
	"rabota_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	sqlDB *sql.DB,
	cfg *config.Config,
) {
	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/healthz", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"ok":     false,
				"status": "database unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"status": "healthy",
		})
	})

	registerFrontend(ginRouter, cfg)
}

// registerFrontend отдаёт собранный SPA-фронтенд: существующие файлы
// по их пути, всё остальное - index.html (роутинг на стороне клиента).
// Неизвестные /api/* пути фронтендом не маскируются и возвращают 404.
func registerFrontend(ginRouter *gin.Engine, cfg *config.Config) {
	frontendDir := cfg.Frontend.Dir
	indexPath := filepath.Join(frontendDir, cfg.Frontend.Index)

	ginRouter.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api/") || path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{
				"ok":      false,
				"message": "Not found",
				"code":    "NOT_FOUND",
			})
			return
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		// filepath.Clean с ведущим "/" отсекает выход из каталога через "..".
		file := filepath.Join(frontendDir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		if _, err := os.Stat(indexPath); err != nil {
			logger.Warn("Frontend index not found", "path", indexPath)
			c.Status(http.StatusNotFound)
			return
		}
		c.File(indexPath)
	})
}
