package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymrank/internal/telemetry/tracing"
	"github.com/2beens/gymrank/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrSessionExists   = errors.New("workout session already exists")
)

type ListParams struct {
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the session and returns it with the assigned ID.
// The UTC offset of the session date is kept, so the session is read back
// in the calendar day it was performed on.
func (r *Repo) Add(ctx context.Context, session WorkoutSession) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.ID == "" {
		session.ID = uuid.NewString()
	} else if _, err := uuid.Parse(session.ID); err != nil {
		return nil, fmt.Errorf("invalid session id [%s]: %w", session.ID, err)
	}
	span.SetAttributes(attribute.String("session.id", session.ID))

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	_, offset := session.Date.Zone()
	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO workout_session
				(id, performed_at, utc_offset_seconds, exercises, created_at)
				VALUES ($1, $2, $3, $4, $5);`,
		session.ID, session.Date, offset, exercisesJson, time.Now(),
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrSessionExists
		}
		return nil, err
	}

	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id::text, performed_at, utc_offset_seconds, exercises FROM workout_session WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	if _, err := uuid.Parse(id); err != nil {
		return ErrSessionNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_session WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ListAll returns the sessions performed within [from, to], oldest first,
// ties ordered by id.
// Nil bounds are open.
func (r *Repo) ListAll(ctx context.Context, from, to *time.Time) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if from != nil {
		span.SetAttributes(attribute.String("from", from.String()))
	}
	if to != nil {
		span.SetAttributes(attribute.String("to", to.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id::text, performed_at, utc_offset_seconds, exercises
			FROM workout_session
				WHERE ($1::timestamptz IS NULL OR performed_at >= $1)
				AND ($2::timestamptz IS NULL OR performed_at <= $2)
			ORDER BY performed_at ASC, id ASC;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sessions: %w", err)
	}
	span.SetAttributes(attribute.Int("count", len(sessions)))
	return sessions, nil
}

// List returns a single page of sessions, newest first, and the total count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []WorkoutSession, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx)
	if err != nil {
		return nil, -1, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("offset", offset))
	if offset >= countAll {
		return []WorkoutSession{}, countAll, nil
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id::text, performed_at, utc_offset_seconds, exercises
			FROM workout_session
			ORDER BY performed_at DESC, id DESC
			LIMIT $1
			OFFSET $2;`,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, -1, err
	}
	return sessions, countAll, nil
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout_session;`).Scan(&count); err != nil {
		return -1, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func rows2sessions(rows pgx.Rows) ([]WorkoutSession, error) {
	sessions := make([]WorkoutSession, 0)
	for rows.Next() {
		var (
			id             string
			performedAt    time.Time
			offsetSeconds  int
			exercisesBytes []byte
		)
		if err := rows.Scan(&id, &performedAt, &offsetSeconds, &exercisesBytes); err != nil {
			return nil, err
		}

		s := WorkoutSession{
			ID:   id,
			Date: performedAt.In(time.FixedZone("", offsetSeconds)),
		}
		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &s.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for session %s: %w", id, err)
			}
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
