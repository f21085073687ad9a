package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymrank/internal/telemetry/metrics"
	"github.com/2beens/gymrank/internal/telemetry/tracing"
	"github.com/2beens/gymrank/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, session WorkoutSession) (*WorkoutSession, error)
	Get(ctx context.Context, id string) (*WorkoutSession, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListParams) (_ []WorkoutSession, total int, err error)
}

// historyObserver is told about every change of the stored history.
type historyObserver interface {
	HistoryChanged(ctx context.Context, trigger string) error
}

type DeleteSessionResponse struct {
	DeletedID string `json:"deletedId"`
}

type ListResponse struct {
	Sessions []WorkoutSession `json:"sessions"`
	Total    int              `json:"total"`
}

type Handler struct {
	repo           workoutsRepo
	observer       historyObserver
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, observer historyObserver, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		observer:       observer,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("add workout, unmarshal json: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}
	if err := session.Validate(); err != nil {
		http.Error(w, "error, invalid workout: "+err.Error(), http.StatusBadRequest)
		return
	}
	if session.Date.IsZero() {
		session.Date = time.Now()
	}

	added, err := handler.repo.Add(ctx, session)
	if err != nil {
		if errors.Is(err, ErrSessionExists) {
			http.Error(w, "error, workout already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add workout [%s]: %s", session.ID, err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}
	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsSaved.Inc()
	}

	handler.notify(ctx, "workout_added")

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal added workout: %s", err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout added: %s, exercises: %d, sets: %d", added.ID, len(added.Exercises), added.SetsCount())
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "error, workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout [%s]: %s", id, err)
		http.Error(w, "error, failed to get workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "error, workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout [%s]: %s", id, err)
		http.Error(w, "error, failed to delete workout", http.StatusInternalServerError)
		return
	}

	handler.notify(ctx, "workout_deleted")
	pkg.WriteJSON(w, DeleteSessionResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "error, invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 || size > 100 {
		http.Error(w, "error, invalid size", http.StatusBadRequest)
		return
	}

	sessions, total, err := handler.repo.List(ctx, ListParams{Page: page, Size: size})
	if err != nil {
		log.Errorf("list workouts, page %d, size %d: %s", page, size, err)
		http.Error(w, "error, failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{Sessions: sessions, Total: total}, http.StatusOK)
}

// notify does not fail the request, the stored history is already changed
// and achievements can be recomputed later.
func (handler *Handler) notify(ctx context.Context, trigger string) {
	if handler.observer == nil {
		return
	}
	if err := handler.observer.HistoryChanged(ctx, trigger); err != nil {
		log.Errorf("history changed [%s], recompute achievements: %s", trigger, err)
	}
}
