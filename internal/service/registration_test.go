package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastro/internal/model"
)

type savedRequest struct {
	contentType string
	requestID   string
	body        map[string]string
}

func newRegistrationServer(t *testing.T, status int, answer string, got *savedRequest) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/api/cadastro", func(w http.ResponseWriter, r *http.Request) {
		got.contentType = r.Header.Get("Content-Type")
		got.requestID = r.Header.Get("X-Request-ID")
		_ = json.NewDecoder(r.Body).Decode(&got.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(answer))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRegistrationClient_Save(t *testing.T) {
	var got savedRequest
	srv := newRegistrationServer(t, http.StatusOK, `{"success": true, "message": "Dados cadastrados com sucesso!"}`, &got)

	err := NewRegistrationClient(srv.URL, time.Second).Save(context.Background(), model.Registration{
		"cnpj":   "12.345.678/0001-90",
		"codigo": "1234567C40641885",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.contentType)
	assert.NotEmpty(t, got.requestID)
	assert.Equal(t, "1234567C40641885", got.body["codigo"])
	assert.Equal(t, "12.345.678/0001-90", got.body["cnpj"])
}

func TestRegistrationClient_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		status int
		answer string
		want   string
	}{
		{
			name:   "validation failure",
			status: http.StatusBadRequest,
			answer: `{"success": false, "message": "Plataforma inválida"}`,
			want:   "Plataforma inválida",
		},
		{
			name:   "success false with 200",
			status: http.StatusOK,
			answer: `{"success": false, "message": "X"}`,
			want:   "X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got savedRequest
			srv := newRegistrationServer(t, tt.status, tt.answer, &got)

			err := NewRegistrationClient(srv.URL, time.Second).Save(context.Background(), model.Registration{})

			var rejected *RejectedError
			require.True(t, errors.As(err, &rejected))
			assert.Equal(t, tt.want, rejected.Message)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestRegistrationClient_MalformedAnswer(t *testing.T) {
	var got savedRequest
	srv := newRegistrationServer(t, http.StatusInternalServerError, `Internal Server Error`, &got)

	err := NewRegistrationClient(srv.URL, time.Second).Save(context.Background(), model.Registration{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response (status 500)")

	var rejected *RejectedError
	assert.False(t, errors.As(err, &rejected))
}
