package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-physics/internal/storage"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world"
	_ "github.com/annel0/voxel-physics/internal/world/block/implementations"
)

// Высота над сгенерированным рельефом: тесты работают с заведомо пустыми ячейками
const testY = 200

func newTestServer(t *testing.T) (*RestServer, *world.WorldManager) {
	t.Helper()
	wm := world.NewWorldManager(1)
	repo := storage.NewMemoryLandingRepo(0)
	t.Cleanup(func() { _ = repo.Close() })

	server := NewRestServer(Config{
		Port:        ":0",
		WorldMgr:    wm,
		LandingRepo: repo,
	})
	return server, wm
}

func doJSON(server *RestServer, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(server, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestStatusEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(server, http.MethodGet, "/api/status", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp GenericResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Contains(t, data, "tick")
	assert.Contains(t, data, "chunks")
	assert.Contains(t, data, "entities")
}

func TestPlaceBlockRejectedWithoutSupport(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(server, http.MethodPost, "/api/world/block", PlaceBlockRequest{
		X: 0, Y: testY, Z: 0, Block: "core:sand",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp GenericResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "requires solid ground", data["reason"])
}

func TestPlaceBlockOnSupport(t *testing.T) {
	server, wm := newTestServer(t)

	// Опора из камня, устанавливается без гейта физики
	recStone := doJSON(server, http.MethodPost, "/api/world/block", PlaceBlockRequest{
		X: 0, Y: testY, Z: 0, Block: "core:stone",
	})
	require.Equal(t, http.StatusOK, recStone.Code)

	recSand := doJSON(server, http.MethodPost, "/api/world/block", PlaceBlockRequest{
		X: 0, Y: testY + 1, Z: 0, Block: "core:sand",
	})
	assert.Equal(t, http.StatusOK, recSand.Code)

	// Блок действительно появился в мире
	getRec := doJSON(server, http.MethodGet, fmt.Sprintf("/api/world/block?x=0&y=%d&z=0", testY+1), nil)
	assert.Equal(t, http.StatusOK, getRec.Code)
	assert.Contains(t, getRec.Body.String(), "core:sand")

	_ = wm
}

func TestPlaceUnknownBlock(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(server, http.MethodPost, "/api/world/block", PlaceBlockRequest{
		X: 0, Y: testY, Z: 0, Block: "core:no_such_block",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBreakBlockEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, doJSON(server, http.MethodPost, "/api/world/block", PlaceBlockRequest{
		X: 1, Y: testY, Z: 1, Block: "core:stone",
	}).Code)

	rec := doJSON(server, http.MethodDelete, fmt.Sprintf("/api/world/block?x=1&y=%d&z=1", testY), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	getRec := doJSON(server, http.MethodGet, fmt.Sprintf("/api/world/block?x=1&y=%d&z=1", testY), nil)
	assert.Contains(t, getRec.Body.String(), "core:air")
}

func TestGetBlockReturnsMetadata(t *testing.T) {
	server, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, doJSON(server, http.MethodPost, "/api/world/block", PlaceBlockRequest{
		X: 2, Y: testY, Z: 2, Block: "core:stone",
	}).Code)

	rec := doJSON(server, http.MethodGet, fmt.Sprintf("/api/world/block?x=2&y=%d&z=2", testY), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Полная карта вспомогательных данных блока присутствует в ответе
	assert.Contains(t, rec.Body.String(), `"hardness":10`)
}

func TestGetBlockBadCoords(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(server, http.MethodGet, "/api/world/block?x=a&y=0&z=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLandingsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	require.NoError(t, server.landingRepo.Save(context.Background(), storage.LandingRecord{
		Origin:  vec.Vec3{X: 0, Y: 10, Z: 0},
		Landing: vec.Vec3{X: 0, Y: 5, Z: 0},
		Time:    time.Now().UTC(),
	}))

	rec := doJSON(server, http.MethodGet, "/api/physics/landings?limit=10", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp GenericResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}
