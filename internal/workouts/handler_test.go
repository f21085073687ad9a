package workouts_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/gymrank/internal/telemetry/metrics"
	"github.com/2beens/gymrank/internal/workouts"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(h *workouts.Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/workouts", h.HandleAdd).Methods("POST")
	r.HandleFunc("/workouts/list/page/{page}/size/{size}", h.HandleList).Methods("GET")
	r.HandleFunc("/workouts/{id}", h.HandleGet).Methods("GET")
	r.HandleFunc("/workouts/{id}", h.HandleDelete).Methods("DELETE")
	return r
}

func testSession() workouts.WorkoutSession {
	return workouts.WorkoutSession{
		Date: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
		Exercises: []workouts.ExerciseEntry{
			{
				Name:        "Bench Press",
				MuscleGroup: "chest",
				Sets: []workouts.SetEntry{
					{Reps: 10, Weight: 60},
					{Reps: 8, Weight: 70, Difficulty: 8},
				},
			},
			{
				Name: "Treadmill",
				Type: "Cardio",
				Sets: []workouts.SetEntry{{Duration: 25, Distance: 5}},
			},
		},
	}
}

func TestHandler_HandleAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	observerMock := NewMockhistoryObserver(ctrl)
	metricsManager := metrics.NewTestManager()
	r := newRouter(workouts.NewHandler(repoMock, observerMock, metricsManager))

	body, err := json.Marshal(testSession())
	require.NoError(t, err)

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s workouts.WorkoutSession) (*workouts.WorkoutSession, error) {
			require.Len(t, s.Exercises, 2)
			// types are normalized before saving
			assert.Equal(t, workouts.ExerciseTypeStrength, s.Exercises[0].Type)
			assert.Equal(t, workouts.ExerciseTypeCardio, s.Exercises[1].Type)
			s.ID = "4b1c9d7e-6a3f-4f7e-9a51-0d1f2e3c4b5a"
			return &s, nil
		})
	observerMock.EXPECT().HistoryChanged(gomock.Any(), "workout_added").Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workouts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var added workouts.WorkoutSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, "4b1c9d7e-6a3f-4f7e-9a51-0d1f2e3c4b5a", added.ID)
	assert.Equal(t, 3, added.SetsCount())
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterWorkoutsSaved))
}

func TestHandler_HandleAdd_ObserverFailureStillCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	observerMock := NewMockhistoryObserver(ctrl)
	r := newRouter(workouts.NewHandler(repoMock, observerMock, nil))

	body, err := json.Marshal(testSession())
	require.NoError(t, err)

	repoMock.EXPECT().Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s workouts.WorkoutSession) (*workouts.WorkoutSession, error) {
			return &s, nil
		})
	observerMock.EXPECT().HistoryChanged(gomock.Any(), "workout_added").Return(errors.New("db gone"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workouts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_HandleAdd_BadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	r := newRouter(workouts.NewHandler(repoMock, nil, nil))

	testCases := []struct {
		name        string
		contentType string
		body        string
		expected    int
	}{
		{name: "WrongContentType", contentType: "text/plain", body: `{}`, expected: http.StatusBadRequest},
		{name: "InvalidJson", contentType: "application/json", body: `{"exercises":`, expected: http.StatusBadRequest},
		{name: "EmptyExerciseName", contentType: "application/json", body: `{"exercises":[{"name":" "}]}`, expected: http.StatusBadRequest},
		{name: "UnknownType", contentType: "application/json", body: `{"exercises":[{"name":"yoga","type":"zen"}]}`, expected: http.StatusBadRequest},
		{name: "NegativeReps", contentType: "application/json", body: `{"exercises":[{"name":"squat","sets":[{"reps":-1}]}]}`, expected: http.StatusBadRequest},
		{name: "DifficultyOutOfRange", contentType: "application/json", body: `{"exercises":[{"name":"squat","sets":[{"difficulty":11}]}]}`, expected: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/workouts", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", tc.contentType)
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestHandler_HandleAdd_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	r := newRouter(workouts.NewHandler(repoMock, nil, nil))

	repoMock.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, workouts.ErrSessionExists)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workouts", bytes.NewBufferString(`{"id":"4b1c9d7e-6a3f-4f7e-9a51-0d1f2e3c4b5a"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_HandleGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	r := newRouter(workouts.NewHandler(repoMock, nil, nil))

	session := testSession()
	session.ID = "s-1"
	repoMock.EXPECT().Get(gomock.Any(), "s-1").Return(&session, nil)
	repoMock.EXPECT().Get(gomock.Any(), "missing").Return(nil, workouts.ErrSessionNotFound)
	repoMock.EXPECT().Get(gomock.Any(), "broken").Return(nil, errors.New("db error"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/s-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got workouts.WorkoutSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s-1", got.ID)
	assert.True(t, session.Date.Equal(got.Date))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_HandleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	observerMock := NewMockhistoryObserver(ctrl)
	r := newRouter(workouts.NewHandler(repoMock, observerMock, nil))

	repoMock.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)
	repoMock.EXPECT().Delete(gomock.Any(), "missing").Return(workouts.ErrSessionNotFound)
	observerMock.EXPECT().HistoryChanged(gomock.Any(), "workout_deleted").Return(nil).Times(1)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/workouts/s-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp workouts.DeleteSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s-1", resp.DeletedID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/workouts/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	r := newRouter(workouts.NewHandler(repoMock, nil, nil))

	s1, s2 := testSession(), testSession()
	s1.ID, s2.ID = "s-1", "s-2"
	repoMock.EXPECT().
		List(gomock.Any(), workouts.ListParams{Page: 2, Size: 2}).
		Return([]workouts.WorkoutSession{s2, s1}, 4, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/list/page/2/size/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp workouts.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, "s-2", resp.Sessions[0].ID)

	for _, path := range []string{
		"/workouts/list/page/0/size/2",
		"/workouts/list/page/x/size/2",
		"/workouts/list/page/1/size/0",
		"/workouts/list/page/1/size/101",
	} {
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}
