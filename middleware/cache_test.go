package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)
}

// cacheRig mounts Cache in front of a counting handler so tests can tell
// a cache hit (handler not reached) from a miss.
type cacheRig struct {
	r    *gin.Engine
	mr   *miniredis.Miniredis
	hits int
}

func newCacheRig(t *testing.T, ttl time.Duration) *cacheRig {
	t.Helper()

	rig := &cacheRig{mr: miniredis.RunT(t)}
	rdb := redis.NewClient(&redis.Options{Addr: rig.mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	handler := func(c *gin.Context) {
		rig.hits++
		c.JSON(http.StatusOK, gin.H{"hits": rig.hits})
	}

	rig.r = gin.New()
	rig.r.GET("/things", Cache(rdb, ttl), handler)
	rig.r.POST("/things", Cache(rdb, ttl), handler)
	rig.r.GET("/missing", Cache(rdb, ttl), func(c *gin.Context) {
		rig.hits++
		c.JSON(http.StatusNotFound, gin.H{"detail": "nope"})
	})
	return rig
}

func (rig *cacheRig) request(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	rig.r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestCache_ServesRepeatGetFromRedis(t *testing.T) {
	rig := newCacheRig(t, time.Minute)

	first := rig.request(http.MethodGet, "/things")
	require.Equal(t, http.StatusOK, first.Code)

	second := rig.request(http.MethodGet, "/things")
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, 1, rig.hits, "second request must not reach the handler")
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.True(t, rig.mr.Exists("vhotelok-cache:/things"))
}

func TestCache_KeyIncludesQueryString(t *testing.T) {
	rig := newCacheRig(t, time.Minute)

	first := rig.request(http.MethodGet, "/things?page=1")
	second := rig.request(http.MethodGet, "/things?page=2")

	assert.Equal(t, 2, rig.hits, "different queries are different cache entries")
	assert.NotEqual(t, first.Body.String(), second.Body.String())
	assert.True(t, rig.mr.Exists("vhotelok-cache:/things?page=1"))
	assert.True(t, rig.mr.Exists("vhotelok-cache:/things?page=2"))
}

func TestCache_EntryExpires(t *testing.T) {
	rig := newCacheRig(t, 10*time.Second)

	rig.request(http.MethodGet, "/things")
	rig.mr.FastForward(11 * time.Second)
	rig.request(http.MethodGet, "/things")

	assert.Equal(t, 2, rig.hits, "expired entry falls back to the handler")
}

func TestCache_OnlyStoresOKResponses(t *testing.T) {
	rig := newCacheRig(t, time.Minute)

	rig.request(http.MethodGet, "/missing")
	rig.request(http.MethodGet, "/missing")

	assert.Equal(t, 2, rig.hits)
	assert.False(t, rig.mr.Exists("vhotelok-cache:/missing"))
}

func TestCache_IgnoresNonGet(t *testing.T) {
	rig := newCacheRig(t, time.Minute)

	rig.request(http.MethodPost, "/things")
	rig.request(http.MethodPost, "/things")

	assert.Equal(t, 2, rig.hits)
	assert.False(t, rig.mr.Exists("vhotelok-cache:/things"))
}

func TestCache_NilClientIsNoop(t *testing.T) {
	hits := 0
	r := gin.New()
	r.GET("/things", Cache(nil, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, hits)
}

func TestCache_SurvivesRedisOutage(t *testing.T) {
	rig := newCacheRig(t, time.Minute)
	rig.mr.Close()

	w := rig.request(http.MethodGet, "/things")
	require.Equal(t, http.StatusOK, w.Code, "a dead redis must not break the endpoint")
	assert.Equal(t, 1, rig.hits)
}
