package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymrank/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// SchemaRepo describes the gymrank tables as they exist in the database.
type SchemaRepo interface {
	GetColumns(ctx context.Context) ([]SchemaColumn, error)
	// GetMigrationVersion returns 0 when no migration was applied yet.
	GetMigrationVersion(ctx context.Context) (version int64, dirty bool, err error)
}

type SchemaColumn struct {
	TableName  string
	ColumnName string
	DataType   string
	Nullable   bool
	PrimaryKey bool
	Default    *string
}

// gymrankTables maps each table to what it holds, in the order they are listed.
var gymrankTables = []struct {
	name string
	note string
}{
	{"workout_session", "one row per workout; exercises is a jsonb array of exercises with their sets"},
	{"bodyweight_report", "bodyweight reports, the latest one is used by bodyweight-ratio achievements"},
	{"unlocked_achievement", "currently unlocked achievement ids with the time they were first unlocked"},
}

func gymrankTableNames() []string {
	names := make([]string, 0, len(gymrankTables))
	for _, t := range gymrankTables {
		names = append(names, t.name)
	}
	return names
}

type poolSchemaRepo struct {
	pool *pgxpool.Pool
}

func NewPoolSchemaRepo(pool *pgxpool.Pool) SchemaRepo {
	return &poolSchemaRepo{pool: pool}
}

func (r *poolSchemaRepo) GetColumns(ctx context.Context) (_ []SchemaColumn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mcp.schemaColumns")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.pool.Query(ctx, `
		SELECT c.table_name, c.column_name, c.data_type, c.is_nullable = 'YES', c.column_default,
			EXISTS (
				SELECT 1
				FROM information_schema.table_constraints tc
				JOIN information_schema.key_column_usage kcu
					ON kcu.constraint_name = tc.constraint_name
					AND kcu.table_schema = tc.table_schema
					AND kcu.table_name = tc.table_name
				WHERE tc.constraint_type = 'PRIMARY KEY'
					AND tc.table_schema = c.table_schema
					AND tc.table_name = c.table_name
					AND kcu.column_name = c.column_name
			)
		FROM information_schema.columns c
		WHERE c.table_schema = 'public'
			AND c.table_name = ANY($1)
		ORDER BY c.table_name, c.ordinal_position;`,
		gymrankTableNames(),
	)
	if err != nil {
		return nil, fmt.Errorf("query information_schema: %w", err)
	}
	defer rows.Close()

	var cols []SchemaColumn
	for rows.Next() {
		var c SchemaColumn
		if err := rows.Scan(&c.TableName, &c.ColumnName, &c.DataType, &c.Nullable, &c.Default, &c.PrimaryKey); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating columns: %w", err)
	}

	span.SetAttributes(attribute.Int("columns", len(cols)))
	return cols, nil
}

// GetMigrationVersion reads the table golang-migrate keeps its state in.
func (r *poolSchemaRepo) GetMigrationVersion(ctx context.Context) (_ int64, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mcp.migrationVersion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		version int64
		dirty   bool
	)
	err = r.pool.QueryRow(ctx, `SELECT version, dirty FROM schema_migrations LIMIT 1;`).Scan(&version, &dirty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query schema_migrations: %w", err)
	}
	return version, dirty, nil
}
