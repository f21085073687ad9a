package progression

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/gymrank/internal/achievements"
	"github.com/2beens/gymrank/internal/rank"
	"github.com/2beens/gymrank/internal/telemetry/tracing"
	"github.com/2beens/gymrank/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type progressionService interface {
	Report(ctx context.Context) (*Report, error)
	Recompute(ctx context.Context, trigger string) (*Report, error)
	Progress(ctx context.Context, id string) (*AchievementProgress, error)
	Rank(ctx context.Context) (*rank.Progress, error)
	Tiers() []rank.Tier
}

type Handler struct {
	service progressionService
}

func NewHandler(service progressionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.get")
	defer span.End()

	report, err := handler.service.Report(ctx)
	if err != nil {
		log.Errorf("get achievements report: %s", err)
		http.Error(w, "error, failed to get achievements", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

func (handler *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.recompute")
	defer span.End()

	report, err := handler.service.Recompute(ctx, "manual")
	if err != nil {
		log.Errorf("recompute achievements: %s", err)
		http.Error(w, "error, failed to recompute achievements", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

func (handler *Handler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.progress")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	progress, err := handler.service.Progress(ctx, id)
	if err != nil {
		if errors.Is(err, achievements.ErrUnknownAchievement) {
			http.Error(w, "error, achievement not found", http.StatusNotFound)
			return
		}
		log.Errorf("get achievement progress [%s]: %s", id, err)
		http.Error(w, "error, failed to get progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rank.get")
	defer span.End()

	progress, err := handler.service.Rank(ctx)
	if err != nil {
		log.Errorf("get rank: %s", err)
		http.Error(w, "error, failed to get rank", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleGetTiers(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSON(w, handler.service.Tiers(), http.StatusOK)
}
