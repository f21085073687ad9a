package unlocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymrank/internal/achievements"
	"github.com/2beens/gymrank/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Now is the clock for unlock times. It matches the microsecond precision of
// timestamptz, so an unlock time reads back exactly as it was first reported.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Store keeps the unlock time of every currently unlocked achievement.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
	}
}

// List returns the stored unlocks, only ID and UnlockedAt (in UTC) are set.
func (s *Store) List(ctx context.Context) (_ []achievements.UnlockedAchievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.unlocks.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(ctx, `SELECT achievement_id, unlocked_at FROM unlocked_achievement ORDER BY unlocked_at;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	unlocked := make([]achievements.UnlockedAchievement, 0)
	for rows.Next() {
		var (
			id         string
			unlockedAt time.Time
		)
		if err := rows.Scan(&id, &unlockedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		unlocked = append(unlocked, achievements.UnlockedAchievement{
			Achievement: achievements.Achievement{ID: id},
			UnlockedAt:  unlockedAt.UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(unlocked)))
	return unlocked, nil
}

// Replace makes the stored set equal to unlocked. Achievements that are no
// longer unlocked are removed; a stored unlock time is never rewritten.
func (s *Store) Replace(ctx context.Context, unlocked []achievements.UnlockedAchievement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.unlocks.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(unlocked)))

	ids := make([]string, 0, len(unlocked))
	for _, u := range unlocked {
		ids = append(ids, u.ID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Errorf("unlocks replace, rollback: %s", rbErr)
		}
	}()

	tag, err := tx.Exec(ctx, `DELETE FROM unlocked_achievement WHERE NOT (achievement_id = ANY($1));`, ids)
	if err != nil {
		return fmt.Errorf("delete relocked: %w", err)
	}
	span.SetAttributes(attribute.Int64("relocked", tag.RowsAffected()))

	batch := &pgx.Batch{}
	for _, u := range unlocked {
		batch.Queue(
			`INSERT INTO unlocked_achievement (achievement_id, unlocked_at) VALUES ($1, $2) ON CONFLICT (achievement_id) DO NOTHING;`,
			u.ID, u.UnlockedAt,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert unlocked: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
