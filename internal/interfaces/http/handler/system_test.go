package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandler_Ping(t *testing.T) {
	h := NewSystemHandler("mrp-backend", "1.0.0", nil)

	c, w := newTestContext(t)
	h.Ping(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("mrp-backend", "1.0.0", nil)

	c, w := newTestContext(t)
	h.GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mrp-backend")
	assert.Contains(t, w.Body.String(), "go1")
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := NewSystemHandler("mrp-backend", "1.0.0", func() error { return nil })

		c, w := newTestContext(t)
		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("database down", func(t *testing.T) {
		h := NewSystemHandler("mrp-backend", "1.0.0", func() error {
			return errors.New("dial tcp: connection refused")
		})

		c, w := newTestContext(t)
		h.Health(c)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unreachable")
	})

	t.Run("no ping configured", func(t *testing.T) {
		h := NewSystemHandler("mrp-backend", "1.0.0", nil)

		c, w := newTestContext(t)
		h.Health(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
