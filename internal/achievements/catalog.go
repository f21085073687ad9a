package achievements

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

var (
	ErrDuplicateID        = errors.New("duplicate achievement id")
	ErrInvalidDefinition  = errors.New("invalid achievement definition")
	ErrUnknownAchievement = errors.New("unknown achievement")
)

// Catalog is the validated, ordered set of achievement definitions.
// It is immutable once built and safe for concurrent use.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog validates the given definition groups and joins them in order.
// Every problem found is reported, not only the first one.
func NewCatalog(groups ...[]Definition) (*Catalog, error) {
	c := &Catalog{
		index: make(map[string]int),
	}

	empty := NewHistory(nil, 0)
	// ids seen so far, valid or not, so a repeated id is always a duplicate
	seen := make(map[string]bool)
	var errs error
	for _, group := range groups {
		for _, d := range group {
			if d.ID != "" && seen[d.ID] {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, d.ID))
				continue
			}
			seen[d.ID] = true
			if err := validateDefinition(d, empty); err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			c.index[d.ID] = len(c.defs)
			c.defs = append(c.defs, d)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return c, nil
}

func validateDefinition(d Definition, empty *History) error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id (title %q)", ErrInvalidDefinition, d.Title)
	}
	if d.Points <= 0 {
		return fmt.Errorf("%w: %s: points must be positive, got %d", ErrInvalidDefinition, d.ID, d.Points)
	}
	if !d.Category.IsValid() {
		return fmt.Errorf("%w: %s: unknown category %q", ErrInvalidDefinition, d.ID, d.Category)
	}
	if !d.Rarity.IsValid() {
		return fmt.Errorf("%w: %s: unknown rarity %d", ErrInvalidDefinition, d.ID, int(d.Rarity))
	}
	if d.When == nil {
		return fmt.Errorf("%w: %s: no condition", ErrInvalidDefinition, d.ID)
	}
	if m, ok := d.When.(Measurable); ok && m.Measure(empty).Target <= 0 {
		return fmt.Errorf("%w: %s: progress target must be positive", ErrInvalidDefinition, d.ID)
	}
	if met, _ := safeMet(d.When, empty); met {
		return fmt.Errorf("%w: %s: unlocked without any workout", ErrInvalidDefinition, d.ID)
	}
	return nil
}

// DefaultCatalog builds the compiled-in catalog.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(
		consistencyDefinitions(),
		strengthDefinitions(),
		volumeDefinitions(),
		varietyDefinitions(),
		milestoneDefinitions(),
		dedicationDefinitions(),
		progressionDefinitions(),
	)
}

// MustDefaultCatalog is DefaultCatalog that panics on an invalid catalog.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("achievements catalog: %s", err))
	}
	return c
}

// Definitions returns all definitions in declaration order.
func (c *Catalog) Definitions() []Definition {
	return c.defs
}

func (c *Catalog) Len() int {
	return len(c.defs)
}

func (c *Catalog) Get(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

func (c *Catalog) position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return len(c.defs)
}

// Progress is the partial completion of a still-locked achievement.
type Progress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit,omitempty"`
	Note    string  `json:"note,omitempty"`
	Percent int     `json:"percent"`
}

// Progress measures how close h is to unlocking the achievement. It returns
// nil without error when the achievement has no measurable condition.
func (c *Catalog) Progress(id string, h *History) (*Progress, error) {
	d, ok := c.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAchievement, id)
	}
	return measure(d, h), nil
}

func measure(d Definition, h *History) (p *Progress) {
	m, ok := d.When.(Measurable)
	if !ok {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			logPanic(d.ID, r)
			p = nil
		}
	}()

	measurement := m.Measure(h)
	return &Progress{
		Current: measurement.Current,
		Target:  measurement.Target,
		Unit:    measurement.Unit,
		Note:    measurement.Note,
		Percent: progressPercent(measurement.Current, measurement.Target, m.Met(h)),
	}
}

// progressPercent never reports 100 for a condition that is not met.
func progressPercent(current, target float64, met bool) int {
	if target <= 0 || math.IsNaN(current) {
		return 0
	}
	percent := int(math.Round(100 * current / target))
	percent = min(max(percent, 0), 100)
	if !met {
		percent = min(percent, 99)
	}
	return percent
}

type CategoryStat struct {
	Category Category `json:"category"`
	Unlocked int      `json:"unlocked"`
	Total    int      `json:"total"`
	Percent  int      `json:"percent"`
}

// CategoryStats counts unlocked achievements per category, in Categories order.
// Unlocked entries unknown to the catalog are ignored.
func (c *Catalog) CategoryStats(unlocked []UnlockedAchievement) []CategoryStat {
	totals := make(map[Category]int)
	for _, d := range c.defs {
		totals[d.Category]++
	}
	done := make(map[Category]int)
	seen := make(map[string]bool)
	for _, u := range unlocked {
		d, ok := c.Get(u.ID)
		if !ok || seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		done[d.Category]++
	}

	stats := make([]CategoryStat, 0, len(Categories))
	for _, category := range Categories {
		stat := CategoryStat{
			Category: category,
			Unlocked: done[category],
			Total:    totals[category],
		}
		if stat.Total > 0 {
			stat.Percent = int(math.Round(100 * float64(stat.Unlocked) / float64(stat.Total)))
		}
		stats = append(stats, stat)
	}
	return stats
}

func def(id, title, description, icon string, rarity Rarity, points int, when Condition) Definition {
	return Definition{
		Achievement: Achievement{
			ID:          id,
			Title:       title,
			Description: description,
			Icon:        icon,
			Rarity:      rarity,
			Points:      points,
		},
		When: when,
	}
}

func withCategory(category Category, defs []Definition) []Definition {
	for i := range defs {
		defs[i].Category = category
	}
	return defs
}
