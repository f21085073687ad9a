//go:build integration_test

package internal_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/2beens/gymrank/internal"
	"github.com/2beens/gymrank/internal/achievements"
	"github.com/2beens/gymrank/internal/config"
	"github.com/2beens/gymrank/internal/db/dbtest"
	"github.com/2beens/gymrank/internal/middleware"
	"github.com/2beens/gymrank/internal/progression"
	"github.com/2beens/gymrank/internal/workouts"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	serverHost = "127.0.0.1"
	serverPort = 9123
	testToken  = "test-token"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type ServerTestSuite struct {
	suite.Suite

	server     *internal.Server
	httpClient *http.Client
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupSuite() {
	t := s.T()
	pgParams := dbtest.StartPostgres(t)
	redisPort := startRedis(t)

	tokenHash, err := bcrypt.GenerateFromPassword([]byte(testToken), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Environment:              "development",
		Host:                     serverHost,
		Port:                     serverPort,
		PostgresHost:             pgParams.DBHost,
		PostgresPort:             pgParams.DBPort,
		PostgresDBName:           pgParams.DBName,
		PostgresUser:             pgParams.DBUser,
		PostgresSSLMode:          pgParams.SSLMode,
		RedisHost:                "localhost",
		RedisPort:                redisPort,
		PrometheusMetricsHost:    serverHost,
		PrometheusMetricsPort:    "0",
		CorsTrustedAgents:        []string{"test-agent"},
		RecomputeRateLimitPerMin: 2,
		ReportCacheTTLSeconds:    60,
		ReportCacheSizeMB:        32,
		Secrets: config.Secrets{
			APISecretHash:    string(tokenHash),
			PostgresPassword: pgParams.DBPassword,
		},
	}

	s.server, err = internal.NewServer(context.Background(), internal.NewServerParams{
		Config:      cfg,
		VersionInfo: "test-version-info",
	})
	require.NoError(t, err)
	s.server.Serve(cfg.Host, cfg.Port)

	s.httpClient = &http.Client{Timeout: 10 * time.Second}
	require.Eventually(t, func() bool {
		resp, err := s.httpClient.Get(serverEndpoint + "/rank/tiers")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)
}

func (s *ServerTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func startRedis(t *testing.T) string {
	t.Helper()
	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err, "run redis")
	t.Cleanup(func() {
		_ = dockerPool.Purge(resource)
	})
	_ = resource.Expire(120)

	return resource.GetPort("6379/tcp")
}

func (s *ServerTestSuite) do(method, path string, body any, withToken bool) (int, []byte) {
	t := s.T()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set(middleware.AuthTokenHeader, testToken)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *ServerTestSuite) TestWorkoutUnlocksAchievements() {
	t := s.T()

	status, _ := s.do(http.MethodPost, "/workouts", workouts.WorkoutSession{}, false)
	require.Equal(t, http.StatusUnauthorized, status)

	session := workouts.WorkoutSession{
		Date: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
		Exercises: []workouts.ExerciseEntry{
			{
				Name:        "Bench Press",
				MuscleGroup: "chest",
				Sets: []workouts.SetEntry{
					{Reps: 5, Weight: 100},
					{Reps: 5, Weight: 100},
				},
			},
		},
	}
	status, body := s.do(http.MethodPost, "/workouts", session, true)
	require.Equal(t, http.StatusCreated, status, string(body))

	var added workouts.WorkoutSession
	require.NoError(t, json.Unmarshal(body, &added))
	require.NotEmpty(t, added.ID)

	status, body = s.do(http.MethodGet, "/workouts/"+added.ID, nil, false)
	require.Equal(t, http.StatusOK, status)
	var fetched workouts.WorkoutSession
	require.NoError(t, json.Unmarshal(body, &fetched))
	require.True(t, session.Date.Equal(fetched.Date))

	status, body = s.do(http.MethodGet, "/achievements", nil, false)
	require.Equal(t, http.StatusOK, status)
	var report progression.Report
	require.NoError(t, json.Unmarshal(body, &report))
	require.True(t, hasUnlocked(report.Unlocked, "first_workout"), string(body))
	require.Positive(t, report.TotalPoints)
	require.Equal(t, report.TotalPoints, report.Rank.TotalPoints)

	status, body = s.do(http.MethodGet, "/achievements/first_workout/progress", nil, false)
	require.Equal(t, http.StatusOK, status)
	var progress progression.AchievementProgress
	require.NoError(t, json.Unmarshal(body, &progress))
	require.True(t, progress.Unlocked)

	status, _ = s.do(http.MethodGet, "/achievements/nope/progress", nil, false)
	require.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodDelete, "/workouts/"+added.ID, nil, true)
	require.Equal(t, http.StatusOK, status)

	// with the only session gone the history no longer earns it
	status, body = s.do(http.MethodGet, "/achievements", nil, false)
	require.Equal(t, http.StatusOK, status)
	report = progression.Report{}
	require.NoError(t, json.Unmarshal(body, &report))
	require.False(t, hasUnlocked(report.Unlocked, "first_workout"))
	require.Zero(t, report.TotalPoints)
}

func (s *ServerTestSuite) TestBodyweight() {
	t := s.T()

	status, body := s.do(http.MethodPost, "/profile/weight", map[string]any{"weightKg": 82.5}, true)
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = s.do(http.MethodGet, "/profile/weight", nil, false)
	require.Equal(t, http.StatusOK, status)
	var resp struct {
		WeightKg float64 `json:"weightKg"`
		Found    bool    `json:"found"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.True(t, resp.Found)
	require.Equal(t, 82.5, resp.WeightKg)

	status, _ = s.do(http.MethodPost, "/profile/weight", map[string]any{"weightKg": -1}, true)
	require.Equal(t, http.StatusBadRequest, status)
}

func (s *ServerTestSuite) TestRecomputeIsRateLimited() {
	t := s.T()

	var statuses []int
	for range 5 {
		status, _ := s.do(http.MethodPost, "/achievements/recompute", nil, true)
		statuses = append(statuses, status)
	}
	require.Contains(t, statuses, http.StatusTooEarly)
}

func hasUnlocked(unlocked []achievements.UnlockedAchievement, id string) bool {
	for _, u := range unlocked {
		if u.ID == id {
			return true
		}
	}
	return false
}
