package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sampita/companytree/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(rdb *redis.Client, handler gin.HandlerFunc) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)

	hits := 0
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("account_id", "acc-1")
		c.Next()
	})
	r.POST("/things", middleware.Idempotency(rdb), func(c *gin.Context) {
		hits++
		handler(c)
	})
	return r, &hits
}

func createdHandler(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func postThings(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	if idempKey != "" {
		req.Header.Set("Idempotency-Key", idempKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_SecondRequestReplaysWithoutRerunning(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r, hits := newIdempotencyRouter(rdb, createdHandler)

	cacheKey := "idemp:/things:acc-1:key-1"
	lockKey := cacheKey + ":lock"

	// first attempt: passes through, then stores the body and frees the lock
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, `{"ok":true}`, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	// retry after completion: served from the cache, handler never runs
	mock.ExpectGet(cacheKey).SetVal(`{"ok":true}`)

	first := postThings(r, "key-1")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, 1, *hits)

	second := postThings(r, "key-1")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *hits)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_RejectsDuplicateInFlight(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r, hits := newIdempotencyRouter(rdb, createdHandler)

	cacheKey := "idemp:/things:acc-1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := postThings(r, "key-1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.Equal(t, 0, *hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FailedAttemptReleasesLockWithoutCaching(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r, hits := newIdempotencyRouter(rdb, func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
	})

	cacheKey := "idemp:/things:acc-1:key-1"
	lockKey := cacheKey + ":lock"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	// no Set: a failure must not become the replay payload
	mock.ExpectDel(lockKey).SetVal(1)

	w := postThings(r, "key-1")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, *hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeySkipsRedis(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r, hits := newIdempotencyRouter(rdb, createdHandler)

	w := postThings(r, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, *hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}
