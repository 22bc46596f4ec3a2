package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardfront/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("api", slog.String("method", "GET"), slog.Int("status", 200))
	require.Equal(t, "api", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "method", g[0].Key)
	assert.Equal(t, "status", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestCardAttrs(t *testing.T) {
	t.Parallel()

	id := logger.CardID(42)
	assert.Equal(t, "card_id", id.Key)
	assert.Equal(t, int64(42), id.Value.Int64())
	assert.True(t, logger.CardID(0).Equal(slog.Attr{}))

	num := logger.CardNumber("41**********1111")
	assert.Equal(t, "card_number", num.Key)
	assert.Equal(t, "41**********1111", num.Value.String())
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(503), logger.Status(503).Value.Int64())
	assert.Equal(t, "PUT", logger.Method("PUT").Value.String())
	assert.Equal(t, "url", logger.URL("http://x").Key)
	assert.Equal(t, int64(2), logger.Attempt(2).Value.Int64())

	d := logger.Duration(1500 * time.Millisecond)
	assert.Equal(t, "duration_ms", d.Key)
	assert.Equal(t, int64(1500), d.Value.Int64())
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
}
