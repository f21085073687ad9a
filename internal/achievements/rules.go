package achievements

import (
	"math"
	"strings"
	"time"

	"github.com/2beens/gymrank/internal/workouts"
)

// Condition decides whether an achievement is unlocked for a history.
type Condition interface {
	Met(h *History) bool
}

// Measurable is a Condition that can also tell how close a history is to meeting it.
type Measurable interface {
	Condition
	Measure(h *History) Measurement
}

type Measurement struct {
	Current float64
	Target  float64
	Unit    string
	Note    string
}

// Metric reduces a history to a single non-negative number.
type Metric func(h *History) float64

// threshold is met once its metric reaches the target.
type threshold struct {
	metric Metric
	target float64
	unit   string
	note   func(h *History) string
}

func (t threshold) Met(h *History) bool {
	return t.metric(h) >= t.target
}

func (t threshold) Measure(h *History) Measurement {
	m := Measurement{
		Current: t.metric(h),
		Target:  t.target,
		Unit:    t.unit,
	}
	if t.note != nil {
		m.Note = t.note(h)
	}
	return m
}

func atLeast(metric Metric, target float64, unit string) Condition {
	return threshold{metric: metric, target: target, unit: unit}
}

// predicate is a plain boolean rule with no progress to report.
type predicate func(h *History) bool

func (p predicate) Met(h *History) bool {
	return p(h)
}

// SetFilter selects sets, given the exercise they belong to.
type SetFilter func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool

func allOf(filters ...SetFilter) SetFilter {
	return func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
		for _, f := range filters {
			if !f(ex, set) {
				return false
			}
		}
		return true
	}
}

func anySet(workouts.ExerciseEntry, workouts.SetEntry) bool { return true }

func strengthSet(ex workouts.ExerciseEntry, _ workouts.SetEntry) bool { return !ex.IsCardio() }

func cardioSet(ex workouts.ExerciseEntry, _ workouts.SetEntry) bool { return ex.IsCardio() }

func bodyweightSet(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
	return !ex.IsCardio() && (set.IsBodyweight || set.Weight <= 0) && set.Reps > 0
}

func repsBetween(minReps, maxReps int) SetFilter {
	return func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
		return !ex.IsCardio() && set.Reps >= minReps && set.Reps <= maxReps
	}
}

func repsAtLeast(reps int) SetFilter {
	return func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
		return !ex.IsCardio() && set.Reps >= reps
	}
}

func weightAtLeast(kg float64) SetFilter {
	return func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
		return !ex.IsCardio() && set.Weight >= kg && set.Reps > 0
	}
}

// rpeAtLeast selects rated sets; an unrated set (0) never matches.
func rpeAtLeast(rpe int) SetFilter {
	return func(_ workouts.ExerciseEntry, set workouts.SetEntry) bool {
		return set.Difficulty > 0 && set.Difficulty >= rpe
	}
}

func rated(_ workouts.ExerciseEntry, set workouts.SetEntry) bool {
	return set.Difficulty > 0
}

func named(key string) SetFilter {
	key = strings.ToLower(key)
	return func(ex workouts.ExerciseEntry, _ workouts.SetEntry) bool {
		return strings.Contains(ex.NormalizedName(), key)
	}
}

func muscleGroup(group string) SetFilter {
	group = strings.ToLower(group)
	return func(ex workouts.ExerciseEntry, _ workouts.SetEntry) bool {
		return ex.NormalizedMuscleGroup() == group
	}
}

func distanceAtLeast(km float64) SetFilter {
	return func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
		return ex.IsCardio() && set.Distance >= km
	}
}

func durationAtLeast(minutes float64) SetFilter {
	return func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
		return ex.IsCardio() && set.Duration >= minutes
	}
}

func intensity(tag string) SetFilter {
	return func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
		return ex.IsCardio() && strings.EqualFold(set.Intensity, tag)
	}
}

// fasterThan selects cardio sets covering at least km within the given minutes.
func fasterThan(km, minutes float64) SetFilter {
	return func(ex workouts.ExerciseEntry, set workouts.SetEntry) bool {
		return ex.IsCardio() && set.Distance >= km && set.Duration > 0 && set.Duration <= minutes
	}
}

// ---- counting metrics ----

func sessionCount(h *History) float64 {
	return float64(h.Len())
}

func countSets(filter SetFilter) Metric {
	return func(h *History) float64 {
		count := 0
		h.eachSet(func(_ int, ex workouts.ExerciseEntry, set workouts.SetEntry) {
			if filter(ex, set) {
				count++
			}
		})
		return float64(count)
	}
}

func sumReps(filter SetFilter) Metric {
	return func(h *History) float64 {
		total := 0
		h.eachSet(func(_ int, ex workouts.ExerciseEntry, set workouts.SetEntry) {
			if filter(ex, set) {
				total += max(set.Reps, 0)
			}
		})
		return float64(total)
	}
}

func countSessions(filter func(s SessionSummary) bool) Metric {
	return func(h *History) float64 {
		count := 0
		for i := range h.Len() {
			if filter(h.Summary(i)) {
				count++
			}
		}
		return float64(count)
	}
}

// sumSessions adds a per-session aggregate over the whole history.
func sumSessions(value func(s SessionSummary) float64) Metric {
	return func(h *History) float64 {
		total := 0.0
		for i := range h.Len() {
			total += value(h.Summary(i))
		}
		return total
	}
}

// bestSession is the largest per-session aggregate. An empty history yields 0,
// which never satisfies a positive target.
func bestSession(value func(s SessionSummary) float64) Metric {
	return func(h *History) float64 {
		best := 0.0
		for i := range h.Len() {
			best = max(best, value(h.Summary(i)))
		}
		return best
	}
}

func sessionSets(s SessionSummary) float64         { return float64(s.Sets) }
func sessionReps(s SessionSummary) float64         { return float64(s.Reps) }
func sessionVolume(s SessionSummary) float64       { return s.Volume }
func sessionExercises(s SessionSummary) float64    { return float64(s.Exercises) }
func sessionMuscleGroups(s SessionSummary) float64 { return float64(s.MuscleGroups) }
func sessionCardioMin(s SessionSummary) float64    { return s.CardioMin }
func sessionCardioKm(s SessionSummary) float64     { return s.CardioKm }
func sessionOne(SessionSummary) float64            { return 1 }

func hourBetween(from, to int) func(s SessionSummary) bool {
	return func(s SessionSummary) bool {
		if from <= to {
			return s.Hour >= from && s.Hour < to
		}
		// wraps midnight
		return s.Hour >= from || s.Hour < to
	}
}

func onWeekend(s SessionSummary) bool {
	return s.Weekday == time.Saturday || s.Weekday == time.Sunday
}

func inMonth(month time.Month) func(s SessionSummary) bool {
	return func(s SessionSummary) bool {
		return s.Day.Month() == month
	}
}

func onDate(month time.Month, day int) func(s SessionSummary) bool {
	return func(s SessionSummary) bool {
		return s.Day.Month() == month && s.Day.Day() == day
	}
}

// ---- extremum metrics ----

// maxWeight is the heaviest loaded set of a named exercise, 0 when never performed.
func maxWeight(exercise string) Metric {
	filter := allOf(named(exercise), weightAtLeast(0))
	return func(h *History) float64 {
		best := 0.0
		h.eachSet(func(_ int, ex workouts.ExerciseEntry, set workouts.SetEntry) {
			if filter(ex, set) {
				best = max(best, set.Weight)
			}
		})
		return best
	}
}

func heaviestSet(h *History) float64 {
	return bestSession(func(s SessionSummary) float64 { return s.MaxWeight })(h)
}

// bodyweightMultiple is the best lift of the exercise divided by bodyweight.
func bodyweightMultiple(exercise string) Metric {
	lift := maxWeight(exercise)
	return func(h *History) float64 {
		bw := h.BodyweightKg()
		if bw <= 0 {
			return 0
		}
		return lift(h) / bw
	}
}

func bodyweightNote(h *History) string {
	if h.UsesDefaultBodyweight() {
		return "no bodyweight reported, assuming 75 kg"
	}
	return ""
}

func atLeastBodyweight(exercise string, multiple float64) Condition {
	return threshold{
		metric: bodyweightMultiple(exercise),
		target: multiple,
		unit:   "x bodyweight",
		note:   bodyweightNote,
	}
}

// EstimatedOneRepMax uses the Epley formula; a single rep is the weight itself.
func EstimatedOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return weight * (1 + 0.0333*float64(reps))
}

func bestOneRepMax(exercise string) Metric {
	filter := named(exercise)
	return func(h *History) float64 {
		best := 0.0
		h.eachSet(func(_ int, ex workouts.ExerciseEntry, set workouts.SetEntry) {
			if !ex.IsCardio() && filter(ex, set) {
				best = max(best, EstimatedOneRepMax(set.Weight, set.Reps))
			}
		})
		return best
	}
}

// mostRepsInSet is the largest single-set rep count among matching sets.
func mostRepsInSet(filter SetFilter) Metric {
	return func(h *History) float64 {
		best := 0
		h.eachSet(func(_ int, ex workouts.ExerciseEntry, set workouts.SetEntry) {
			if filter(ex, set) {
				best = max(best, set.Reps)
			}
		})
		return float64(best)
	}
}

// ---- streak metrics ----

// longestStreak is the longest run of calendar days each one day after the previous.
func longestStreak(h *History) float64 {
	days := h.Days()
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return float64(longest)
}

// longestWeeklyStreak counts consecutive ISO weeks with at least one workout.
func longestWeeklyStreak(h *History) float64 {
	days := h.Days()
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	prev := weekStart(days[0])
	for _, day := range days[1:] {
		start := weekStart(day)
		switch {
		case start.Equal(prev):
			continue
		case start.Equal(prev.AddDate(0, 0, 7)):
			run++
			longest = max(longest, run)
		default:
			run = 1
		}
		prev = start
	}
	return float64(longest)
}

// weekStart returns the Monday of the ISO week containing day.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// latestGapBetween is met when the two most recent workout days are between
// minDays and maxDays apart. Appending a workout can make it false again.
func latestGapBetween(minDays, maxDays int) Condition {
	return predicate(func(h *History) bool {
		days := h.Days()
		if len(days) < 2 {
			return false
		}
		gap := int(days[len(days)-1].Sub(days[len(days)-2]).Hours() / 24)
		return gap >= minDays && gap <= maxDays
	})
}

// ---- cardinality metrics ----

func distinctExercises(filter SetFilter) Metric {
	return func(h *History) float64 {
		seen := make(map[string]bool)
		h.eachExercise(func(_ int, ex workouts.ExerciseEntry) {
			name := ex.NormalizedName()
			if name == "" {
				return
			}
			for _, set := range ex.Sets {
				if filter(ex, set) {
					seen[name] = true
					return
				}
			}
		})
		return float64(len(seen))
	}
}

func distinctMuscleGroups(h *History) float64 {
	seen := make(map[string]bool)
	h.eachExercise(func(_ int, ex workouts.ExerciseEntry) {
		if group := ex.NormalizedMuscleGroup(); group != "" {
			seen[group] = true
		}
	})
	return float64(len(seen))
}

// distinctWeights counts different loads used, rounded to the nearest step.
func distinctWeights(step float64) Metric {
	return func(h *History) float64 {
		seen := make(map[int64]bool)
		h.eachSet(func(_ int, ex workouts.ExerciseEntry, set workouts.SetEntry) {
			if ex.IsCardio() || set.Weight <= 0 {
				return
			}
			seen[int64(math.Round(set.Weight/step))] = true
		})
		return float64(len(seen))
	}
}

func distinctSessionValues(key func(s SessionSummary) int) Metric {
	return func(h *History) float64 {
		seen := make(map[int]bool)
		for i := range h.Len() {
			seen[key(h.Summary(i))] = true
		}
		return float64(len(seen))
	}
}

func hourOfDay(s SessionSummary) int   { return s.Hour }
func dayOfWeek(s SessionSummary) int   { return int(s.Weekday) }
func monthOfYear(s SessionSummary) int { return int(s.Day.Month()) }

func distinctCardioTags(h *History) float64 {
	seen := make(map[string]bool)
	h.eachSet(func(_ int, ex workouts.ExerciseEntry, set workouts.SetEntry) {
		if !ex.IsCardio() {
			return
		}
		if tag := strings.ToLower(strings.TrimSpace(set.Intensity)); tag != "" {
			seen["intensity:"+tag] = true
		}
		if tag := strings.ToLower(strings.TrimSpace(set.Timing)); tag != "" {
			seen["timing:"+tag] = true
		}
	})
	return float64(len(seen))
}

// ---- cross-session progression metrics ----

// weightIncreases counts how many times the per-session max weight of an
// exercise strictly increased from one session to the next.
func weightIncreases(exercise string) Metric {
	return func(h *History) float64 {
		series := h.maxWeightSeries(exercise)
		increases := 0
		for i := 1; i < len(series); i++ {
			if series[i] > series[i-1] {
				increases++
			}
		}
		return float64(increases)
	}
}

// runningMaxRatio is the best per-session max weight divided by the first recorded one.
func runningMaxRatio(exercise string) Metric {
	return func(h *History) float64 {
		series := h.maxWeightSeries(exercise)
		if len(series) < 2 || series[0] <= 0 {
			return 0
		}
		best := series[0]
		for _, w := range series[1:] {
			best = max(best, w)
		}
		return best / series[0]
	}
}

// personalRecords counts sessions that set a new all-time max weight for any
// exercise, not counting the first time an exercise is loaded.
func personalRecords(h *History) float64 {
	records := 0
	for _, name := range h.names {
		best := 0.0
		for _, w := range h.maxWeightByName[name] {
			if w <= 0 {
				continue
			}
			if best > 0 && w > best {
				records++
			}
			best = max(best, w)
		}
	}
	return float64(records)
}

// ---- set-order patterns ----

// plateauDrops counts sets lighter than the plateauLen preceding sets of the
// same exercise, which all shared one weight.
func plateauDrops(plateauLen int) Metric {
	return func(h *History) float64 {
		drops := 0
		h.eachExercise(func(_ int, ex workouts.ExerciseEntry) {
			if ex.IsCardio() {
				return
			}
			run := 0
			for i, set := range ex.Sets {
				if i == 0 {
					run = 1
					continue
				}
				prev := ex.Sets[i-1].Weight
				switch {
				case set.Weight == prev:
					run++
				case set.Weight < prev && set.Weight > 0 && run >= plateauLen:
					drops++
					run = 1
				default:
					run = 1
				}
			}
		})
		return float64(drops)
	}
}

// pyramids counts exercise entries with at least minSets strictly increasing loads.
func pyramids(minSets int) Metric {
	return func(h *History) float64 {
		count := 0
		h.eachExercise(func(_ int, ex workouts.ExerciseEntry) {
			if ex.IsCardio() || len(ex.Sets) < minSets {
				return
			}
			run := 1
			for i := 1; i < len(ex.Sets); i++ {
				if ex.Sets[i].Weight > ex.Sets[i-1].Weight && ex.Sets[i-1].Weight > 0 {
					run++
				} else {
					run = 1
				}
				if run >= minSets {
					count++
					return
				}
			}
		})
		return float64(count)
	}
}

// ---- periodic aggregation ----

func bestWeek(value func(s SessionSummary) float64) Metric {
	return bucketMax(func(s SessionSummary) int {
		year, week := s.Day.ISOWeek()
		return year*100 + week
	}, value)
}

func bestMonth(value func(s SessionSummary) float64) Metric {
	return bucketMax(func(s SessionSummary) int {
		return s.Day.Year()*100 + int(s.Day.Month())
	}, value)
}

func bucketMax(bucket func(s SessionSummary) int, value func(s SessionSummary) float64) Metric {
	return func(h *History) float64 {
		totals := make(map[int]float64)
		best := 0.0
		for i := range h.Len() {
			s := h.Summary(i)
			key := bucket(s)
			totals[key] += value(s)
			best = max(best, totals[key])
		}
		return best
	}
}

// activeMonths counts distinct calendar months with at least one workout.
func activeMonths(h *History) float64 {
	seen := make(map[int]bool)
	for _, day := range h.Days() {
		seen[day.Year()*100+int(day.Month())] = true
	}
	return float64(len(seen))
}

// daysSinceFirst is the span between the first and last workout days, in days.
func daysSinceFirst(h *History) float64 {
	days := h.Days()
	if len(days) < 2 {
		return 0
	}
	return days[len(days)-1].Sub(days[0]).Hours() / 24
}

func ratedShare(h *History) float64 {
	total, withRPE := 0, 0
	h.eachSet(func(_ int, ex workouts.ExerciseEntry, set workouts.SetEntry) {
		if ex.IsCardio() {
			return
		}
		total++
		if set.Difficulty > 0 {
			withRPE++
		}
	})
	if total < 20 {
		return 0
	}
	return float64(withRPE) / float64(total)
}
