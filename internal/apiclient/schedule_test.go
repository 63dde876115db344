package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/schedule", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(7), payload["user_id"])
		assert.Equal(t, "monday", payload["day_of_week"])
		assert.Equal(t, "09:00", payload["time_start"])
		assert.Equal(t, "10:30", payload["time_end"])
		assert.Equal(t, "Математика", payload["subject"])
		assert.Equal(t, "", payload["description"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"item": {"id": 3, "user_id": 7, "day_of_week": "monday", "time_start": "09:00", "time_end": "10:30", "subject": "Математика"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	item, err := client.CreateScheduleItem(context.Background(), 7, model.Monday, "09:00", "10:30", "Математика", "")

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(3), item.ID)
	assert.Equal(t, "Математика", item.Subject)
}

// Текст ошибки из тела ответа должен сохраниться в StatusError,
// он показывается пользователю как есть
func TestCreateScheduleItemErrorBodyPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`time_end must be after time_start`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	item, err := client.CreateScheduleItem(context.Background(), 7, model.Monday, "10:00", "09:00", "Физика", "")

	require.Error(t, err)
	assert.Nil(t, item)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	assert.Equal(t, "time_end must be after time_start", statusErr.Body)
}

func TestGetAllSchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/schedule", r.URL.Path)
		w.Write([]byte(`{"items": [
			{"id": 1, "user_id": 7, "day_of_week": "monday", "time_start": "09:00", "time_end": "10:00", "subject": "Математика"},
			{"id": 2, "user_id": 8, "day_of_week": "friday", "time_start": "12:00", "time_end": "13:00", "subject": "Физика"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	items, err := client.GetAllSchedule(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(8), items[1].UserID)
}

func TestGetAllScheduleEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	items, err := client.GetAllSchedule(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetScheduleItemByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schedule/99", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	item, err := client.GetScheduleItemByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, item)
}

// PATCH отправляет ровно те поля, что переданы, без остальных
func TestUpdateScheduleItemSendsOnlyGivenFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/schedule/3", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]interface{}{"subject": "Химия"}, payload)

		w.Write([]byte(`{"item": {"id": 3, "subject": "Химия"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	item, err := client.UpdateScheduleItem(context.Background(), 3, map[string]string{"subject": "Химия"})

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Химия", item.Subject)
}

func TestDeleteScheduleItem(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "not found", status: http.StatusNotFound, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/schedule/5", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			err := client.DeleteScheduleItem(context.Background(), 5)

			if tt.wantErr {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.status, statusErr.Code)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
