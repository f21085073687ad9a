package workouts

import (
	"fmt"
	"strings"
	"time"
)

type ExerciseType string

const (
	ExerciseTypeStrength ExerciseType = "strength"
	ExerciseTypeCardio   ExerciseType = "cardio"
)

// SetEntry is one performed set. Every numeric field is optional,
// a missing value decodes to zero and is treated as zero everywhere.
type SetEntry struct {
	Reps         int     `json:"reps,omitempty"`
	Weight       float64 `json:"weight,omitempty"`     // kilograms
	Difficulty   int     `json:"difficulty,omitempty"` // RPE 0-10, 0 means not rated
	Duration     float64 `json:"duration,omitempty"`   // minutes, cardio only
	Distance     float64 `json:"distance,omitempty"`   // kilometers, cardio only
	IsBodyweight bool    `json:"isBodyweight,omitempty"`
	Timing       string  `json:"timing,omitempty"`
	Intensity    string  `json:"intensity,omitempty"`
}

// Volume is weight x reps for the set.
func (s SetEntry) Volume() float64 {
	if s.Weight <= 0 || s.Reps <= 0 {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// ExerciseEntry is one exercise within a session, sets in the order performed.
type ExerciseEntry struct {
	Name        string       `json:"name"`
	Type        ExerciseType `json:"type"`
	MuscleGroup string       `json:"muscleGroup,omitempty"`
	Sets        []SetEntry   `json:"sets,omitempty"`
}

// NormalizedName is the lower-cased, trimmed exercise name used for matching.
func (e ExerciseEntry) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(e.Name))
}

func (e ExerciseEntry) NormalizedMuscleGroup() string {
	return strings.ToLower(strings.TrimSpace(e.MuscleGroup))
}

func (e ExerciseEntry) IsCardio() bool {
	return strings.EqualFold(string(e.Type), string(ExerciseTypeCardio))
}

// WorkoutSession is one completed workout. Sessions are never modified once saved.
type WorkoutSession struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Exercises []ExerciseEntry `json:"exercises,omitempty"`
}

// SetsCount returns the total number of sets in the session.
func (ws WorkoutSession) SetsCount() int {
	count := 0
	for _, ex := range ws.Exercises {
		count += len(ex.Sets)
	}
	return count
}

// Validate checks the fields a stored session needs. A missing exercise
// type defaults to strength.
func (ws *WorkoutSession) Validate() error {
	for i := range ws.Exercises {
		ex := &ws.Exercises[i]
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("exercise %d: name empty", i)
		}
		switch ExerciseType(strings.ToLower(string(ex.Type))) {
		case "":
			ex.Type = ExerciseTypeStrength
		case ExerciseTypeStrength, ExerciseTypeCardio:
			ex.Type = ExerciseType(strings.ToLower(string(ex.Type)))
		default:
			return fmt.Errorf("exercise %d: unknown type [%s]", i, ex.Type)
		}
		for j, set := range ex.Sets {
			if set.Reps < 0 || set.Weight < 0 || set.Duration < 0 || set.Distance < 0 {
				return fmt.Errorf("exercise %d, set %d: negative value", i, j)
			}
			if set.Difficulty < 0 || set.Difficulty > 10 {
				return fmt.Errorf("exercise %d, set %d: difficulty out of range", i, j)
			}
		}
	}
	return nil
}
