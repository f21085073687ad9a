package progression

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/2beens/gymrank/internal/achievements"
	"github.com/2beens/gymrank/internal/cache"
	"github.com/2beens/gymrank/internal/profile"
	"github.com/2beens/gymrank/internal/rank"
	"github.com/2beens/gymrank/internal/telemetry/metrics"
	"github.com/2beens/gymrank/internal/telemetry/tracing"
	"github.com/2beens/gymrank/internal/workouts"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const reportCacheKey = "achievements-report"

//go:generate mockgen -source=$GOFILE -destination=progression_mocks_test.go -package=progression_test

type historyRepo interface {
	ListAll(ctx context.Context, from, to *time.Time) ([]workouts.WorkoutSession, error)
}

type bodyweightRepo interface {
	LatestBodyweight(ctx context.Context) (_ *profile.BodyweightReport, found bool, err error)
}

type unlockStore interface {
	List(ctx context.Context) ([]achievements.UnlockedAchievement, error)
	Replace(ctx context.Context, unlocked []achievements.UnlockedAchievement) error
}

// LockedAchievement carries the progress toward unlocking, when measurable.
type LockedAchievement struct {
	achievements.Achievement
	Progress *achievements.Progress `json:"progress,omitempty"`
}

type Report struct {
	Unlocked          []achievements.UnlockedAchievement `json:"unlocked"`
	Locked            []LockedAchievement                `json:"locked"`
	NewlyUnlocked     []string                           `json:"newlyUnlocked"`
	TotalPoints       int                                `json:"totalPoints"`
	Rank              rank.Progress                      `json:"rank"`
	Categories        []achievements.CategoryStat        `json:"categories"`
	BodyweightKg      float64                            `json:"bodyweightKg"`
	DefaultBodyweight bool                               `json:"defaultBodyweight"`
	EvaluatedAt       time.Time                          `json:"evaluatedAt"`
}

type AchievementProgress struct {
	achievements.Achievement
	Unlocked   bool                   `json:"unlocked"`
	UnlockedAt *time.Time             `json:"unlockedAt,omitempty"`
	Progress   *achievements.Progress `json:"progress"`
}

type NewServiceParams struct {
	Evaluator      *achievements.Evaluator
	Ladder         *rank.Ladder
	History        historyRepo
	Bodyweight     bodyweightRepo
	Unlocks        unlockStore
	Cache          cache.Cache
	MetricsManager *metrics.Manager
}

// Service keeps the stored unlocks in line with the workout history.
type Service struct {
	evaluator      *achievements.Evaluator
	ladder         *rank.Ladder
	history        historyRepo
	bodyweight     bodyweightRepo
	unlocks        unlockStore
	cache          cache.Cache
	metricsManager *metrics.Manager

	// guards read-evaluate-write of the stored unlocks
	mu sync.Mutex
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		evaluator:      params.Evaluator,
		ladder:         params.Ladder,
		history:        params.History,
		bodyweight:     params.Bodyweight,
		unlocks:        params.Unlocks,
		cache:          params.Cache,
		metricsManager: params.MetricsManager,
	}
}

func (s *Service) Tiers() []rank.Tier {
	return s.ladder.Tiers()
}

func (s *Service) Catalog() *achievements.Catalog {
	return s.evaluator.Catalog()
}

// HistoryChanged recomputes the achievements after the workout history or
// the bodyweight changed. The cached report is dropped first, so a failed
// recompute leaves the next Report call to evaluate the new history.
func (s *Service) HistoryChanged(ctx context.Context, trigger string) error {
	s.cache.Invalidate(ctx, reportCacheKey)
	_, err := s.Recompute(ctx, trigger)
	return err
}

// Recompute evaluates the whole history, persists the unlocks and caches
// the resulting report.
func (s *Service) Recompute(ctx context.Context, trigger string) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.recompute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trigger", trigger))

	s.mu.Lock()
	defer s.mu.Unlock()

	begin := time.Now()
	h, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}

	previous, err := s.unlocks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}

	res := s.evaluator.Evaluate(h, previous)
	if err := s.unlocks.Replace(ctx, res.Unlocked); err != nil {
		return nil, fmt.Errorf("store unlocks: %w", err)
	}

	report := s.buildReport(h, res)
	elapsed := time.Since(begin)

	span.SetAttributes(
		attribute.Int("sessions", h.Len()),
		attribute.Int("unlocked", len(res.Unlocked)),
		attribute.Int("newly_unlocked", len(res.NewlyUnlocked)),
		attribute.Int("points", res.TotalPoints),
	)
	s.observe(trigger, h, report, elapsed)

	for _, id := range res.NewlyUnlocked {
		log.Infof("achievement unlocked: %s [%s]", id, report.Rank.CurrentRank.Title)
	}
	log.Debugf("achievements recomputed [%s]: %d sessions, %d unlocked, %d points, took %s",
		trigger, h.Len(), len(res.Unlocked), res.TotalPoints, elapsed)

	if reportJson, err := json.Marshal(report); err != nil {
		log.Errorf("marshal achievements report: %s", err)
	} else {
		s.cache.Set(ctx, reportCacheKey, reportJson)
	}

	return report, nil
}

// Report returns the last computed report, recomputing when none is cached.
func (s *Service) Report(ctx context.Context) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, ok := s.cache.Get(ctx, reportCacheKey); ok {
		var report Report
		if err := json.Unmarshal(cached, &report); err == nil {
			span.SetAttributes(attribute.Bool("cached", true))
			return &report, nil
		}
		log.Warnf("cached achievements report invalid, recomputing")
		s.cache.Invalidate(ctx, reportCacheKey)
	}

	return s.Recompute(ctx, "report")
}

func (s *Service) Rank(ctx context.Context) (*rank.Progress, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	return &report.Rank, nil
}

// Progress reports how close the current history is to unlocking id.
func (s *Service) Progress(ctx context.Context, id string) (_ *AchievementProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("achievement.id", id))

	catalog := s.evaluator.Catalog()
	d, ok := catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", achievements.ErrUnknownAchievement, id)
	}

	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	h, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := catalog.Progress(id, h)
	if err != nil {
		return nil, err
	}

	ap := &AchievementProgress{
		Achievement: d.Achievement,
		Progress:    progress,
	}
	for _, u := range report.Unlocked {
		if u.ID == id {
			unlockedAt := u.UnlockedAt
			ap.Unlocked = true
			ap.UnlockedAt = &unlockedAt
			break
		}
	}
	return ap, nil
}

func (s *Service) loadHistory(ctx context.Context) (*achievements.History, error) {
	sessions, err := s.history.ListAll(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	bodyweight, found, err := s.bodyweight.LatestBodyweight(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest bodyweight: %w", err)
	}
	// zero makes the history fall back to, and flag, the default bodyweight
	bodyweightKg := 0.0
	if found && bodyweight != nil {
		bodyweightKg = bodyweight.WeightKg
	}
	return achievements.NewHistory(sessions, bodyweightKg), nil
}

func (s *Service) buildReport(h *achievements.History, res achievements.Result) *Report {
	catalog := s.evaluator.Catalog()
	locked := make([]LockedAchievement, 0, len(res.Locked))
	for _, a := range res.Locked {
		// ids come from the catalog, the lookup cannot fail
		progress, _ := catalog.Progress(a.ID, h)
		locked = append(locked, LockedAchievement{
			Achievement: a,
			Progress:    progress,
		})
	}

	return &Report{
		Unlocked:          res.Unlocked,
		Locked:            locked,
		NewlyUnlocked:     res.NewlyUnlocked,
		TotalPoints:       res.TotalPoints,
		Rank:              s.ladder.ProgressToNext(res.TotalPoints),
		Categories:        catalog.CategoryStats(res.Unlocked),
		BodyweightKg:      h.BodyweightKg(),
		DefaultBodyweight: h.UsesDefaultBodyweight(),
		EvaluatedAt:       res.EvaluatedAt,
	}
}

func (s *Service) observe(trigger string, h *achievements.History, report *Report, elapsed time.Duration) {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.CounterEvaluations.With(prometheus.Labels{"trigger": trigger}).Inc()
	s.metricsManager.HistogramEvaluationDuration.Observe(elapsed.Seconds())
	s.metricsManager.GaugeTotalPoints.Set(float64(report.TotalPoints))
	s.metricsManager.GaugeUnlockedCount.Set(float64(len(report.Unlocked)))
	s.metricsManager.GaugeHistorySessions.Set(float64(h.Len()))
	for _, u := range report.Unlocked {
		if slices.Contains(report.NewlyUnlocked, u.ID) {
			s.metricsManager.CounterNewlyUnlocked.With(prometheus.Labels{"rarity": u.Rarity.String()}).Inc()
		}
	}
}
