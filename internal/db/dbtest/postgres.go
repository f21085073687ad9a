//go:build integration_test

package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/2beens/gymrank/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const (
	dbName     = "gymrank_test"
	dbPassword = "postgres"
)

// NewPostgres starts a postgres container, applies the migrations and
// returns a pool connected to it. The container is removed on test cleanup.
func NewPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	params := StartPostgres(t)
	require.NoError(t, db.Migrate(params), "migrate")

	pool, err := db.NewDBPool(context.Background(), params)
	require.NoError(t, err, "new db pool")
	t.Cleanup(pool.Close)

	return pool
}

// StartPostgres starts an empty postgres container and waits until it
// accepts connections.
func StartPostgres(t *testing.T) db.NewDBPoolParams {
	t.Helper()

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "create dockertest pool")
	require.NoError(t, dockerPool.Client.Ping(), "ping docker")

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + dbPassword,
			"POSTGRES_DB=" + dbName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "run postgres")
	t.Cleanup(func() {
		_ = dockerPool.Purge(resource)
	})
	_ = resource.Expire(120)

	params := db.NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     resource.GetPort("5432/tcp"),
		DBName:     dbName,
		DBUser:     "postgres",
		DBPassword: dbPassword,
		SSLMode:    "disable",
	}

	dockerPool.MaxWait = time.Minute
	require.NoError(t, dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", params.ConnString("postgres"))
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}), "wait for postgres")

	return params
}

// Truncate empties the given tables.
func Truncate(t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY;", table))
		require.NoError(t, err)
	}
}
