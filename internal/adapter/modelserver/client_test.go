package modelserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ag21o9/fire-risk-scoring-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testClient(baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Predict_Success(t *testing.T) {
	features := domain.FeatureVector{4, 5, 1, 3, 85.0, 50.0, 300.0, 10.0, 33.1, 20, 6.7, 0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, contentTypeJSON, r.Header.Get(headerContentType))

		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, features.Values(), req.Features)

		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(predictResponse{Score: 7}))
	}))
	defer srv.Close()

	score, err := testClient(srv.URL).Predict(context.Background(), features)
	require.NoError(t, err)
	assert.Equal(t, 7, score)
}

func TestClient_Predict_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "feature shape mismatch", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Predict(context.Background(), domain.FeatureVector{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "feature shape mismatch")
}

func TestClient_Predict_Unreachable(t *testing.T) {
	_, err := testClient("http://127.0.0.1:1").Predict(context.Background(), domain.FeatureVector{})
	assert.Error(t, err)
}

func TestClient_Predict_BadResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Predict(context.Background(), domain.FeatureVector{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode predict response")
}

func TestClient_CheckReadiness(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		assert.NoError(t, testClient(srv.URL).CheckReadiness(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		err := testClient(srv.URL).CheckReadiness(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("unreachable", func(t *testing.T) {
		assert.Error(t, testClient("http://127.0.0.1:1").CheckReadiness(context.Background()))
	})
}
