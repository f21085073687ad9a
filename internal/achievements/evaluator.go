package achievements

import (
	"cmp"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
)

// Evaluator derives the unlocked and locked achievements of a history.
// It performs no I/O; the caller persists the result.
type Evaluator struct {
	catalog *Catalog
	now     func() time.Time
}

// NewEvaluator creates an evaluator over the catalog. A nil clock means time.Now.
func NewEvaluator(catalog *Catalog, now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{
		catalog: catalog,
		now:     now,
	}
}

func (e *Evaluator) Catalog() *Catalog {
	return e.catalog
}

type Result struct {
	Unlocked      []UnlockedAchievement `json:"unlocked"`
	Locked        []Achievement         `json:"locked"`
	NewlyUnlocked []string              `json:"newlyUnlocked"`
	TotalPoints   int                   `json:"totalPoints"`
	EvaluatedAt   time.Time             `json:"evaluatedAt"`
}

// Evaluate runs every catalog condition against the full history. An
// achievement present in previous keeps its recorded unlock time for as long
// as its condition holds; anything newly unlocked gets the evaluation time.
func (e *Evaluator) Evaluate(h *History, previous []UnlockedAchievement) Result {
	evaluatedAt := e.now()
	recorded := recordedUnlocks(previous)

	res := Result{
		Unlocked:      []UnlockedAchievement{},
		Locked:        []Achievement{},
		NewlyUnlocked: []string{},
		EvaluatedAt:   evaluatedAt,
	}
	for _, d := range e.catalog.defs {
		met, panicked := safeMet(d.When, h)
		if panicked != nil {
			logPanic(d.ID, panicked)
		}
		if !met {
			res.Locked = append(res.Locked, d.Achievement)
			continue
		}

		unlockedAt, ok := recorded[d.ID]
		if !ok {
			unlockedAt = evaluatedAt
			res.NewlyUnlocked = append(res.NewlyUnlocked, d.ID)
		}
		res.Unlocked = append(res.Unlocked, UnlockedAchievement{
			Achievement: d.Achievement,
			UnlockedAt:  unlockedAt,
		})
		res.TotalPoints += d.Points
	}

	// locked entries are already in declaration order
	slices.SortStableFunc(res.Unlocked, func(a, b UnlockedAchievement) int {
		if c := cmp.Compare(b.Rarity, a.Rarity); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(e.catalog.position(a.ID), e.catalog.position(b.ID))
	})

	return res
}

// recordedUnlocks maps ids to their recorded unlock time. A zero time counts
// as not recorded and the earliest time wins when an id repeats.
func recordedUnlocks(previous []UnlockedAchievement) map[string]time.Time {
	recorded := make(map[string]time.Time, len(previous))
	for _, u := range previous {
		if u.ID == "" || u.UnlockedAt.IsZero() {
			continue
		}
		if t, ok := recorded[u.ID]; ok && !u.UnlockedAt.Before(t) {
			continue
		}
		recorded[u.ID] = u.UnlockedAt
	}
	return recorded
}

func safeMet(c Condition, h *History) (met bool, panicked any) {
	defer func() {
		if r := recover(); r != nil {
			met = false
			panicked = r
		}
	}()
	return c.Met(h), nil
}

func logPanic(id string, r any) {
	log.Warnf("achievement %s: condition panicked, treating as locked: %v", id, r)
}
