package achievements

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryConsistency Category = "Consistency"
	CategoryStrength    Category = "Strength"
	CategoryVolume      Category = "Volume"
	CategoryVariety     Category = "Variety"
	CategoryMilestones  Category = "Milestones"
	CategoryDedication  Category = "Dedication"
	CategoryProgression Category = "Progression"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryConsistency,
	CategoryStrength,
	CategoryVolume,
	CategoryVariety,
	CategoryMilestones,
	CategoryDedication,
	CategoryProgression,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Rarity is ordered: common < uncommon < rare < epic < legendary.
type Rarity int

const (
	RarityCommon Rarity = iota + 1
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "common",
	RarityUncommon:  "uncommon",
	RarityRare:      "rare",
	RarityEpic:      "epic",
	RarityLegendary: "legendary",
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rarity(%d)", int(r))
}

func (r Rarity) IsValid() bool {
	_, ok := rarityNames[r]
	return ok
}

// MarshalText encodes an unset rarity as an empty string.
func (r Rarity) MarshalText() ([]byte, error) {
	if r == 0 {
		return []byte{}, nil
	}
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rarity: %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = 0
		return nil
	}
	for rarity, name := range rarityNames {
		if name == string(text) {
			*r = rarity
			return nil
		}
	}
	return fmt.Errorf("unknown rarity: %q", text)
}

// Achievement is the catalog-authored metadata of an achievement, plain data only.
type Achievement struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Category    Category `json:"category"`
	Rarity      Rarity   `json:"rarity"`
	Points      int      `json:"points"`
}

// Definition binds an achievement to the condition that unlocks it.
type Definition struct {
	Achievement
	When Condition
}

// UnlockedAchievement is an achievement with the moment it was first unlocked.
type UnlockedAchievement struct {
	Achievement
	UnlockedAt time.Time `json:"unlockedAt"`
}
