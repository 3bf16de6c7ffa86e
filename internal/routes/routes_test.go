package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"rabota_backend/internal/config"
	"rabota_backend/internal/handlers"
	"rabota_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupFrontendRouter собирает роутер с фронтенд-fallback поверх
// временного каталога статики. Сервисы не нужны: маршруты API
// в этих тестах не вызываются.
func setupFrontendRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>spa-index</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('app')"), 0o644))

	cfg := &config.Config{}
	cfg.Frontend.Dir = dir
	cfg.Frontend.Index = "index.html"

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, nil),
		JobHandler:         handlers.NewJobHandler(base, nil),
		ApplicationHandler: handlers.NewApplicationHandler(base, nil),
	}

	engine := gin.New()
	RegisterRoutes(engine, appHandlers, nil, cfg)
	return engine
}

func TestFrontendFallback_ServesIndexForClientRoutes(t *testing.T) {
	engine := setupFrontendRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/42", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "spa-index")
}

func TestFrontendFallback_ServesExistingAsset(t *testing.T) {
	engine := setupFrontendRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")
}

func TestFrontendFallback_UnknownAPIRouteIs404JSON(t *testing.T) {
	engine := setupFrontendRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestFrontendFallback_PathTraversalStaysInsideDir(t *testing.T) {
	engine := setupFrontendRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil)
	engine.ServeHTTP(w, req)

	// Выйти из каталога статики нельзя: путь чистится и отдаётся index
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "root:")
}
