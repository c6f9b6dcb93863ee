package cache_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/stretchr/testify/assert"
)

func newRouter(store *cache.Store, h cache.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/ponds", cache.Wrap(store, h))
	r.POST("/api/ponds", cache.Wrap(store, h))
	return r
}

func TestWrapCachesGetResponses(t *testing.T) {
	store := cache.NewStore(time.Minute, nil)
	calls := 0
	r := newRouter(store, func(c *gin.Context) (int, interface{}) {
		calls++
		return http.StatusOK, gin.H{"count": calls}
	})

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/api/ponds", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/ponds", nil))

	assert.Equal(t, 1, calls)
	assert.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestWrapAddsNoMarkerHeader(t *testing.T) {
	store := cache.NewStore(time.Minute, nil)
	r := newRouter(store, func(c *gin.Context) (int, interface{}) {
		return http.StatusOK, gin.H{"ok": true}
	})

	// miss, then hit
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ponds", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ponds", nil))

	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestWrapDoesNotCacheErrors(t *testing.T) {
	store := cache.NewStore(time.Minute, nil)
	calls := 0
	r := newRouter(store, func(c *gin.Context) (int, interface{}) {
		calls++
		return http.StatusNotFound, gin.H{"error": "not found"}
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ponds", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ponds", nil))

	assert.Equal(t, 2, calls)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, store.Len())
}

func TestWrapSkipsNonGet(t *testing.T) {
	store := cache.NewStore(time.Minute, nil)
	calls := 0
	r := newRouter(store, func(c *gin.Context) (int, interface{}) {
		calls++
		return http.StatusOK, gin.H{"ok": true}
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/ponds", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/ponds", nil))

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, store.Len())
}

func TestWrapNilStorePassesThrough(t *testing.T) {
	calls := 0
	r := newRouter(nil, func(c *gin.Context) (int, interface{}) {
		calls++
		return http.StatusOK, gin.H{"ok": true}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ponds", nil))

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWrapDistinguishesQueryStrings(t *testing.T) {
	store := cache.NewStore(time.Minute, nil)
	calls := 0
	r := newRouter(store, func(c *gin.Context) (int, interface{}) {
		calls++
		return http.StatusOK, gin.H{"season": c.Query("seasonId")}
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ponds?seasonId=a", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ponds?seasonId=b", nil))

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, store.Len())
}

func TestInvalidatedKeyIsRecomputed(t *testing.T) {
	store := cache.NewStore(time.Minute, nil)
	calls := 0
	r := newRouter(store, func(c *gin.Context) (int, interface{}) {
		calls++
		return http.StatusOK, gin.H{"count": calls}
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ponds", nil))
	store.InvalidatePrefix("/api/ponds")
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ponds", nil))

	assert.Equal(t, 2, calls)
}
