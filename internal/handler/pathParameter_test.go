package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathParameter(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("id", "123")

	id, ok := GetPathParameter(ctx, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
}

func TestGetPathParameter_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	id, ok := GetPathParameter(ctx, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, uint(0), id)
}

func TestGetDateParameter(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("date", "2024-03-01")

	date, ok := GetDateParameter(ctx, "date", newYork)
	assert.True(t, ok)
	assert.Equal(t, "2024-03-01", date.String())
	assert.Equal(t, newYork, date.Location())
}

func TestGetDateParameter_Invalid(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("date", "01-03-2024")

	_, ok := GetDateParameter(ctx, "date", time.UTC)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQueryInt(t *testing.T) {
	newContext := func(t *testing.T, url string) (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		request, err := http.NewRequest(http.MethodGet, url, nil)
		require.NoError(t, err)
		ctx.Request = request
		return ctx, w
	}

	ctx, _ := newContext(t, "/events/upcoming?limit=5")
	limit, ok := GetQueryInt(ctx, "limit", 3)
	assert.True(t, ok)
	assert.Equal(t, 5, limit)

	ctx, _ = newContext(t, "/events/upcoming")
	limit, ok = GetQueryInt(ctx, "limit", 3)
	assert.True(t, ok)
	assert.Equal(t, 3, limit)

	ctx, w := newContext(t, "/events/upcoming?limit=many")
	_, ok = GetQueryInt(ctx, "limit", 3)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	fallback := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	ctx, _ = newContext(t, "/events/upcoming?from=2024-03-02T10:00:00Z")
	from, ok := GetQueryTime(ctx, "from", fallback)
	assert.True(t, ok)
	assert.Equal(t, fallback.Add(34*time.Hour), from)

	ctx, w = newContext(t, "/events/upcoming?from=yesterday")
	_, ok = GetQueryTime(ctx, "from", fallback)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
