package geoip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/config"
	"github.com/findhelp-service/internal/infrastructure/geoip"
)

func TestRequestPermission(t *testing.T) {
	t.Run("consent granted", func(t *testing.T) {
		client := geoip.NewClient(&config.GeolocationConfig{Consent: true, RequestTimeout: 1}, zap.NewNop())

		granted, err := client.RequestPermission(context.Background())
		require.NoError(t, err)
		assert.True(t, granted)
	})

	t.Run("consent withheld is not an error", func(t *testing.T) {
		client := geoip.NewClient(&config.GeolocationConfig{Consent: false, RequestTimeout: 1}, zap.NewNop())

		granted, err := client.RequestPermission(context.Background())
		require.NoError(t, err)
		assert.False(t, granted)
	})
}

func TestCurrentPosition(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/json", r.URL.Path)
			w.Write([]byte(`{"status":"success","lat":40.7128,"lon":-74.006}`))
		}))
		defer server.Close()

		client := geoip.NewClient(&config.GeolocationConfig{
			BaseURL:        server.URL,
			RequestTimeout: 2,
			Consent:        true,
		}, zap.NewNop())

		pos, err := client.CurrentPosition(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 40.7128, pos.Latitude)
		assert.Equal(t, -74.006, pos.Longitude)
		assert.False(t, pos.Timestamp.IsZero())
	})

	t.Run("lookup failure surfaces as error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"fail","message":"private range"}`))
		}))
		defer server.Close()

		client := geoip.NewClient(&config.GeolocationConfig{
			BaseURL:        server.URL,
			RequestTimeout: 2,
		}, zap.NewNop())

		_, err := client.CurrentPosition(context.Background())
		assert.Error(t, err)
	})

	t.Run("deadline surfaces as context error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := geoip.NewClient(&config.GeolocationConfig{
			BaseURL:        server.URL,
			RequestTimeout: 2,
		}, zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.CurrentPosition(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
