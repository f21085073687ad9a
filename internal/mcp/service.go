package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymrank/internal/progression"
	"github.com/2beens/gymrank/internal/rank"
	"github.com/2beens/gymrank/internal/workouts"
)

// ProgressionReader provides the achievement report, rank and per-achievement progress.
type ProgressionReader interface {
	Report(ctx context.Context) (*progression.Report, error)
	Rank(ctx context.Context) (*rank.Progress, error)
	Progress(ctx context.Context, id string) (*progression.AchievementProgress, error)
}

// WorkoutsRepo provides the stored workout sessions.
type WorkoutsRepo interface {
	ListAll(ctx context.Context, from, to *time.Time) ([]workouts.WorkoutSession, error)
}

// contextService is used by Handler, kept as an interface for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetAchievements(ctx context.Context) (*progression.Report, error)
	GetRank(ctx context.Context) (*rank.Progress, error)
	GetAchievementProgress(ctx context.Context, id string) (*progression.AchievementProgress, error)
	ListWorkouts(ctx context.Context, from, to time.Time) ([]workouts.WorkoutSession, error)
}

// ContextService implements the gymrank context lookups behind the MCP tools.
type ContextService struct {
	schema      SchemaRepo
	progression ProgressionReader
	workouts    WorkoutsRepo
}

func NewContextService(schemaRepo SchemaRepo, progressionReader ProgressionReader, workoutsRepo WorkoutsRepo) *ContextService {
	return &ContextService{
		schema:      schemaRepo,
		progression: progressionReader,
		workouts:    workoutsRepo,
	}
}

// GetSchema returns the DB schema of the gymrank tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	version, dirty, err := s.schema.GetMigrationVersion(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols, version, dirty), nil
}

func formatSchema(cols []SchemaColumn, version int64, dirty bool) string {
	var b strings.Builder
	b.WriteString("# Gymrank DB Schema\n\n")
	fmt.Fprintf(&b, "Migration version: %d", version)
	if dirty {
		b.WriteString(" (dirty, last migration failed)")
	}
	b.WriteString("\n\n")

	if len(cols) == 0 {
		b.WriteString("No gymrank tables found in the database.\n")
		return b.String()
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	for _, table := range gymrankTables {
		tableCols, ok := byTable[table.name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n%s.\n\n", table.name, table.note)
		b.WriteString("| Column | Type | Nullable | Default | Key |\n|--------|------|----------|---------|-----|\n")
		for _, c := range tableCols {
			nullable, def, key := "no", "-", ""
			if c.Nullable {
				nullable = "yes"
			}
			if c.Default != nil && *c.Default != "" {
				def = *c.Default
			}
			if c.PrimaryKey {
				key = "PK"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", c.ColumnName, c.DataType, nullable, def, key)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetAchievements(ctx context.Context) (*progression.Report, error) {
	return s.progression.Report(ctx)
}

func (s *ContextService) GetRank(ctx context.Context) (*rank.Progress, error) {
	return s.progression.Rank(ctx)
}

func (s *ContextService) GetAchievementProgress(ctx context.Context, id string) (*progression.AchievementProgress, error) {
	return s.progression.Progress(ctx, id)
}

// ListWorkouts returns the sessions performed within [from, to].
func (s *ContextService) ListWorkouts(ctx context.Context, from, to time.Time) ([]workouts.WorkoutSession, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("to_date %s is before from_date %s", to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	return s.workouts.ListAll(ctx, &from, &to)
}
