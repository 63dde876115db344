package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterExistingUser(t *testing.T) {
	var createCalled bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/users/42":
			w.Write([]byte(`{"user": {"id": 7, "telegram_id": 42, "username": "alice"}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/users":
			createCalled = true
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"user": {"id": 8}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	svc := NewUserService(apiclient.NewClient(srv.URL), zap.NewNop())

	user, err := svc.Register(context.Background(), 42, "alice", "Alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.False(t, createCalled, "existing user must not be created again")
}

func TestRegisterNewUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/users/42":
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPost && r.URL.Path == "/api/users":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"user": {"id": 8, "telegram_id": 42, "username": "alice"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	svc := NewUserService(apiclient.NewClient(srv.URL), zap.NewNop())

	user, err := svc.Register(context.Background(), 42, "alice", "Alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(8), user.ID)
}

func TestRegisterBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewUserService(apiclient.NewClient(srv.URL), zap.NewNop())

	user, err := svc.Register(context.Background(), 42, "alice", "Alice")
	require.Error(t, err)
	assert.Nil(t, user)
}

func TestGetByTelegramIDUnregistered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewUserService(apiclient.NewClient(srv.URL), zap.NewNop())

	user, err := svc.GetByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, user)
}
