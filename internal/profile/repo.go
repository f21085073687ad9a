package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymrank/internal/achievements"
	"github.com/2beens/gymrank/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type BodyweightReport struct {
	ID         int       `json:"id"`
	WeightKg   float64   `json:"weightKg"`
	ReportedAt time.Time `json:"reportedAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddReport(ctx context.Context, report BodyweightReport) (_ *BodyweightReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.addReport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Float64("weight_kg", report.WeightKg))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO bodyweight_report (weight_kg, reported_at) VALUES ($1, $2) RETURNING id;`,
		report.WeightKg, report.ReportedAt,
	).Scan(&report.ID); err != nil {
		return nil, fmt.Errorf("insert bodyweight report: %w", err)
	}

	return &report, nil
}

// LatestBodyweight returns the most recently reported bodyweight, or the
// default bodyweight with found=false when nothing was reported yet.
func (r *Repo) LatestBodyweight(ctx context.Context) (_ *BodyweightReport, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.latestBodyweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var report BodyweightReport
	err = r.db.QueryRow(
		ctx,
		`SELECT id, weight_kg::float8, reported_at FROM bodyweight_report ORDER BY reported_at DESC, id DESC LIMIT 1;`,
	).Scan(&report.ID, &report.WeightKg, &report.ReportedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		span.SetAttributes(attribute.Bool("found", false))
		return &BodyweightReport{WeightKg: achievements.DefaultBodyweightKg}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("latest bodyweight: %w", err)
	}

	span.SetAttributes(attribute.Bool("found", true))
	return &report, true, nil
}
