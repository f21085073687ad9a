package rank

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var ErrInvalidLadder = errors.New("invalid rank ladder")

// Tier is one band of the points ladder. MaxPoints is nil for the top tier.
type Tier struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	AccentColor string `json:"accentColor"`
	Benefits    string `json:"benefits"`
	MinPoints   int    `json:"minPoints"`
	MaxPoints   *int   `json:"maxPoints,omitempty"`
}

func (t Tier) Contains(points int) bool {
	if points < t.MinPoints {
		return false
	}
	return t.MaxPoints == nil || points <= *t.MaxPoints
}

// Ladder is an ascending, contiguous list of tiers starting at zero points.
type Ladder struct {
	tiers []Tier
}

// NewLadder validates the tiers: the first starts at 0, each next tier starts
// right after the previous one ends and only the last one is unbounded.
func NewLadder(tiers []Tier) (*Ladder, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", ErrInvalidLadder)
	}
	if tiers[0].MinPoints != 0 {
		return nil, fmt.Errorf("%w: first tier %s starts at %d", ErrInvalidLadder, tiers[0].ID, tiers[0].MinPoints)
	}
	for i, tier := range tiers {
		last := i == len(tiers)-1
		switch {
		case last && tier.MaxPoints != nil:
			return nil, fmt.Errorf("%w: top tier %s must be unbounded", ErrInvalidLadder, tier.ID)
		case last:
			continue
		case tier.MaxPoints == nil:
			return nil, fmt.Errorf("%w: tier %s is unbounded but not the top tier", ErrInvalidLadder, tier.ID)
		case *tier.MaxPoints < tier.MinPoints:
			return nil, fmt.Errorf("%w: tier %s ends before it starts", ErrInvalidLadder, tier.ID)
		case tiers[i+1].MinPoints != *tier.MaxPoints+1:
			return nil, fmt.Errorf("%w: gap or overlap between %s and %s", ErrInvalidLadder, tier.ID, tiers[i+1].ID)
		}
	}
	return &Ladder{tiers: cloneTiers(tiers)}, nil
}

// clone copies the tier along with its MaxPoints bound.
func (t Tier) clone() Tier {
	if t.MaxPoints != nil {
		t.MaxPoints = bound(*t.MaxPoints)
	}
	return t
}

func cloneTiers(tiers []Tier) []Tier {
	cloned := slices.Clone(tiers)
	for i := range cloned {
		cloned[i] = cloned[i].clone()
	}
	return cloned
}

func bound(points int) *int {
	return &points
}

var defaultTiers = []Tier{
	{
		ID: "rookie", Title: "Rookie", Icon: "seedling", Color: "#9E9E9E", AccentColor: "#E0E0E0",
		Benefits: "Every journey starts with a first rep", MinPoints: 0, MaxPoints: bound(249),
	},
	{
		ID: "apprentice", Title: "Apprentice", Icon: "dumbbell", Color: "#8D6E63", AccentColor: "#D7CCC8",
		Benefits: "You have built the habit", MinPoints: 250, MaxPoints: bound(649),
	},
	{
		ID: "athlete", Title: "Athlete", Icon: "running", Color: "#43A047", AccentColor: "#C8E6C9",
		Benefits: "Training is part of who you are", MinPoints: 650, MaxPoints: bound(1499),
	},
	{
		ID: "veteran", Title: "Veteran", Icon: "shield", Color: "#1E88E5", AccentColor: "#BBDEFB",
		Benefits: "Seasoned and consistent", MinPoints: 1500, MaxPoints: bound(3499),
	},
	{
		ID: "elite", Title: "Elite", Icon: "star", Color: "#8E24AA", AccentColor: "#E1BEE7",
		Benefits: "Among the most dedicated lifters", MinPoints: 3500, MaxPoints: bound(6999),
	},
	{
		ID: "champion", Title: "Champion", Icon: "trophy", Color: "#FB8C00", AccentColor: "#FFE0B2",
		Benefits: "Records fall where you train", MinPoints: 7000, MaxPoints: bound(11999),
	},
	{
		ID: "legend", Title: "Legend", Icon: "crown", Color: "#FDD835", AccentColor: "#FFF9C4",
		Benefits: "Your name is spoken in every gym", MinPoints: 12000,
	},
}

// DefaultLadder returns the built-in ladder, Rookie to Legend.
func DefaultLadder() *Ladder {
	ladder, err := NewLadder(defaultTiers)
	if err != nil {
		panic(err)
	}
	return ladder
}

// Tiers returns a copy of the ladder's tiers, lowest first.
func (l *Ladder) Tiers() []Tier {
	return cloneTiers(l.tiers)
}

// RankFor returns the highest tier whose MinPoints is not above points.
// Negative totals resolve to the lowest tier.
func (l *Ladder) RankFor(points int) Tier {
	return l.tiers[l.indexFor(points)].clone()
}

func (l *Ladder) indexFor(points int) int {
	for i := len(l.tiers) - 1; i > 0; i-- {
		if points >= l.tiers[i].MinPoints {
			return i
		}
	}
	return 0
}

type Progress struct {
	CurrentRank     Tier  `json:"currentRank"`
	NextRank        *Tier `json:"nextRank"`
	ProgressPercent int   `json:"progressPercent"`
	PointsToNext    int   `json:"pointsToNext"`
	TotalPoints     int   `json:"totalPoints"`
}

func (l *Ladder) ProgressToNext(points int) Progress {
	i := l.indexFor(points)
	current := l.tiers[i].clone()
	p := Progress{
		CurrentRank: current,
		TotalPoints: points,
	}
	if i == len(l.tiers)-1 {
		p.ProgressPercent = 100
		return p
	}

	next := l.tiers[i+1].clone()
	p.NextRank = &next
	p.PointsToNext = max(next.MinPoints-points, 0)

	span := next.MinPoints - current.MinPoints
	if span <= 0 {
		p.ProgressPercent = 100
		return p
	}
	percent := math.Round(100 * float64(points-current.MinPoints) / float64(span))
	p.ProgressPercent = int(min(max(percent, 0), 100))

	return p
}
