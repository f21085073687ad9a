package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/gymrank/internal/telemetry/tracing"
	"github.com/2beens/gymrank/pkg"

	log "github.com/sirupsen/logrus"
)

const maxBodyweightKg = 500

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileRepo interface {
	AddReport(ctx context.Context, report BodyweightReport) (*BodyweightReport, error)
	LatestBodyweight(ctx context.Context) (_ *BodyweightReport, found bool, err error)
}

type historyObserver interface {
	HistoryChanged(ctx context.Context, trigger string) error
}

type BodyweightResponse struct {
	BodyweightReport
	Found bool `json:"found"`
}

type Handler struct {
	repo     profileRepo
	observer historyObserver
}

func NewHandler(repo profileRepo, observer historyObserver) *Handler {
	return &Handler{
		repo:     repo,
		observer: observer,
	}
}

func (handler *Handler) HandleAddBodyweight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.addBodyweight")
	defer span.End()

	var report BodyweightReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		log.Tracef("add bodyweight, unmarshal json: %s", err)
		http.Error(w, "add bodyweight failed", http.StatusBadRequest)
		return
	}
	if report.WeightKg <= 0 || report.WeightKg > maxBodyweightKg {
		http.Error(w, "error, invalid weight", http.StatusBadRequest)
		return
	}
	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now()
	}

	added, err := handler.repo.AddReport(ctx, report)
	if err != nil {
		log.Errorf("add bodyweight report: %s", err)
		http.Error(w, "error, failed to add bodyweight", http.StatusInternalServerError)
		return
	}

	if handler.observer != nil {
		if err := handler.observer.HistoryChanged(ctx, "bodyweight_reported"); err != nil {
			log.Errorf("bodyweight reported, recompute achievements: %s", err)
		}
	}

	pkg.WriteJSON(w, BodyweightResponse{BodyweightReport: *added, Found: true}, http.StatusCreated)
}

func (handler *Handler) HandleGetBodyweight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.getBodyweight")
	defer span.End()

	report, found, err := handler.repo.LatestBodyweight(ctx)
	if err != nil {
		log.Errorf("get bodyweight: %s", err)
		http.Error(w, "error, failed to get bodyweight", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, BodyweightResponse{BodyweightReport: *report, Found: found}, http.StatusOK)
}
