package achievements

import (
	"slices"
	"strings"
	"time"

	"github.com/2beens/gymrank/internal/workouts"
)

// DefaultBodyweightKg is used by bodyweight-ratio rules when no bodyweight is known.
const DefaultBodyweightKg = 75.0

// SessionSummary holds the per-session reductions that many rules share.
type SessionSummary struct {
	Day          time.Time // calendar date of the session, midnight UTC
	Hour         int
	Weekday      time.Weekday
	Exercises    int
	Sets         int
	StrengthSets int
	CardioSets   int
	Reps         int
	Volume       float64
	MaxWeight    float64
	CardioMin    float64
	CardioKm     float64
	MuscleGroups int
}

// History is the read-only view of a workout history that rules evaluate.
// It is built once per evaluation: sessions are ordered by date and every
// per-session aggregate is computed up front, indexed by session position.
type History struct {
	sessions   []workouts.WorkoutSession
	summaries  []SessionSummary
	days       []time.Time
	bodyweight float64
	defaultBW  bool

	// normalized exercise name -> max weight per session index (0 when absent)
	maxWeightByName map[string][]float64
	names           []string
}

// NewHistory builds a History from the saved sessions. The input slice is
// not modified. A non-positive bodyweight falls back to DefaultBodyweightKg.
func NewHistory(sessions []workouts.WorkoutSession, bodyweightKg float64) *History {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b workouts.WorkoutSession) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	h := &History{
		sessions:        sorted,
		summaries:       make([]SessionSummary, len(sorted)),
		bodyweight:      bodyweightKg,
		maxWeightByName: make(map[string][]float64),
	}
	if bodyweightKg <= 0 {
		h.bodyweight = DefaultBodyweightKg
		h.defaultBW = true
	}

	seenDays := make(map[time.Time]bool)
	for i, session := range sorted {
		h.summaries[i] = h.summarize(i, session)
		day := h.summaries[i].Day
		if !seenDays[day] {
			seenDays[day] = true
			h.days = append(h.days, day)
		}
	}
	slices.SortFunc(h.days, func(a, b time.Time) int { return a.Compare(b) })

	for name := range h.maxWeightByName {
		h.names = append(h.names, name)
	}
	slices.Sort(h.names)

	return h
}

func (h *History) summarize(index int, session workouts.WorkoutSession) SessionSummary {
	s := SessionSummary{
		Day:       calendarDay(session.Date),
		Hour:      session.Date.Hour(),
		Weekday:   session.Date.Weekday(),
		Exercises: len(session.Exercises),
	}

	groups := make(map[string]bool)
	for _, ex := range session.Exercises {
		if group := ex.NormalizedMuscleGroup(); group != "" {
			groups[group] = true
		}
		name := ex.NormalizedName()
		for _, set := range ex.Sets {
			s.Sets++
			s.Reps += max(set.Reps, 0)
			if ex.IsCardio() {
				s.CardioSets++
				s.CardioMin += max(set.Duration, 0)
				s.CardioKm += max(set.Distance, 0)
				continue
			}
			s.StrengthSets++
			s.Volume += set.Volume()
			if set.Weight > s.MaxWeight {
				s.MaxWeight = set.Weight
			}
			if name != "" && set.Weight > 0 {
				series, ok := h.maxWeightByName[name]
				if !ok {
					series = make([]float64, len(h.sessions))
					h.maxWeightByName[name] = series
				}
				if set.Weight > series[index] {
					series[index] = set.Weight
				}
			}
		}
	}
	s.MuscleGroups = len(groups)

	return s
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (h *History) Len() int {
	return len(h.sessions)
}

// Sessions returns the sessions in ascending date order. Callers must not modify them.
func (h *History) Sessions() []workouts.WorkoutSession {
	return h.sessions
}

func (h *History) Summary(i int) SessionSummary {
	return h.summaries[i]
}

// Days returns the distinct calendar days with at least one workout, ascending.
func (h *History) Days() []time.Time {
	return h.days
}

func (h *History) BodyweightKg() float64 {
	return h.bodyweight
}

// UsesDefaultBodyweight reports whether no bodyweight was supplied.
func (h *History) UsesDefaultBodyweight() bool {
	return h.defaultBW
}

// maxWeightSeries returns the per-session max weight of every exercise whose
// name contains key, skipping sessions where no such exercise was loaded.
func (h *History) maxWeightSeries(key string) []float64 {
	key = strings.ToLower(key)
	perSession := make([]float64, len(h.sessions))
	for _, name := range h.names {
		if !strings.Contains(name, key) {
			continue
		}
		for i, w := range h.maxWeightByName[name] {
			if w > perSession[i] {
				perSession[i] = w
			}
		}
	}

	series := make([]float64, 0, len(perSession))
	for _, w := range perSession {
		if w > 0 {
			series = append(series, w)
		}
	}
	return series
}

// eachSet calls fn for every set of every session, in history order.
func (h *History) eachSet(fn func(i int, ex workouts.ExerciseEntry, set workouts.SetEntry)) {
	for i, session := range h.sessions {
		for _, ex := range session.Exercises {
			for _, set := range ex.Sets {
				fn(i, ex, set)
			}
		}
	}
}

// eachExercise calls fn for every exercise entry of every session, in history order.
func (h *History) eachExercise(fn func(i int, ex workouts.ExerciseEntry)) {
	for i, session := range h.sessions {
		for _, ex := range session.Exercises {
			fn(i, ex)
		}
	}
}
