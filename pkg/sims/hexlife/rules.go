package hexlife

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	// MaxAge caps the age of every site.
	MaxAge = 20

	// Channels is the width of the rule accumulator: one channel per tribe
	// plus the polarity channel.
	Channels = 5

	// PolarityChannel indexes the neighbor-arrangement channel.
	PolarityChannel = Channels - 1

	// MaxTribes is the number of tribe channels available in the accumulator.
	MaxTribes = Channels - 1
)

var (
	// ErrNoTribes reports an empty tribe table.
	ErrNoTribes = errors.New("no tribes configured")
	// ErrTooManyTribes reports a table wider than the accumulator.
	ErrTooManyTribes = errors.New("too many tribes")
	// ErrTribeID reports a tribe whose id does not match its table position.
	ErrTribeID = errors.New("tribe id out of order")
	// ErrDecayRate reports a non-positive decay rate.
	ErrDecayRate = errors.New("decay rate must be positive")
	// ErrRuleKind reports an unknown RuleSpec variant.
	ErrRuleKind = errors.New("unknown rule kind")
)

// Accumulator holds the weighted neighbor sums a rule is evaluated against.
type Accumulator [Channels]int

// Weights multiplies the accumulator channels of a Range rule.
type Weights [Channels]int

// RuleKind tags the RuleSpec variant.
type RuleKind uint8

const (
	// RuleNever is never satisfied.
	RuleNever RuleKind = iota
	// RuleAlways is always satisfied.
	RuleAlways
	// RuleRange is satisfied when the weighted sum lies within its bounds.
	RuleRange
)

// RuleSpec is a single predicate over an Accumulator. The zero value is a
// Never rule.
type RuleSpec struct {
	Kind    RuleKind
	Weights Weights

	Min    int
	Max    int
	HasMin bool
	HasMax bool
}

// Never returns a rule that is never satisfied.
func Never() RuleSpec { return RuleSpec{Kind: RuleNever} }

// Always returns a rule that is always satisfied.
func Always() RuleSpec { return RuleSpec{Kind: RuleAlways} }

// Between is satisfied when min <= w·acc <= max.
func Between(w Weights, min, max int) RuleSpec {
	return RuleSpec{Kind: RuleRange, Weights: w, Min: min, Max: max, HasMin: true, HasMax: true}
}

// AtLeast is satisfied when w·acc >= min.
func AtLeast(w Weights, min int) RuleSpec {
	return RuleSpec{Kind: RuleRange, Weights: w, Min: min, HasMin: true}
}

// AtMost is satisfied when w·acc <= max.
func AtMost(w Weights, max int) RuleSpec {
	return RuleSpec{Kind: RuleRange, Weights: w, Max: max, HasMax: true}
}

// Exactly is satisfied when w·acc == v.
func Exactly(w Weights, v int) RuleSpec { return Between(w, v, v) }

// Sum returns the dot product of the rule weights and acc.
func (r RuleSpec) Sum(acc Accumulator) int {
	sum := 0
	for i, w := range r.Weights {
		sum += w * acc[i]
	}
	return sum
}

// Eval reports whether the rule holds for acc.
func (r RuleSpec) Eval(acc Accumulator) bool {
	switch r.Kind {
	case RuleAlways:
		return true
	case RuleRange:
		sum := r.Sum(acc)
		if r.HasMin && sum < r.Min {
			return false
		}
		if r.HasMax && sum > r.Max {
			return false
		}
		return true
	default:
		return false
	}
}

// RuleGroup is satisfied when both of its rules are.
type RuleGroup [2]RuleSpec

// Eval reports whether both rules hold.
func (g RuleGroup) Eval(acc Accumulator) bool {
	return g[0].Eval(acc) && g[1].Eval(acc)
}

// TribeRuleSet is satisfied when either of its groups is. It is used for both
// survival and birth.
type TribeRuleSet [2]RuleGroup

// Eval reports whether either group holds.
func (s TribeRuleSet) Eval(acc Accumulator) bool {
	return s[0].Eval(acc) || s[1].Eval(acc)
}

// Only builds a rule set whose second group can never fire.
func Only(a, b RuleSpec) TribeRuleSet {
	return TribeRuleSet{{a, b}, {Never(), Never()}}
}

// Either builds a rule set from two groups.
func Either(g1, g2 RuleGroup) TribeRuleSet {
	return TribeRuleSet{g1, g2}
}

// TribeConfig describes one species.
type TribeConfig struct {
	ID        int
	Name      string
	Color     color.RGBA
	Priority  int
	DecayRate int
	Survival  TribeRuleSet
	Birth     TribeRuleSet
}

// RuleConfig is a validated, id-indexed tribe table. Birth candidates are
// evaluated in table order.
type RuleConfig struct {
	tribes []TribeConfig
}

// NewRuleConfig validates tribes and returns a RuleConfig. Tribe ids must be
// dense and equal to their table position.
func NewRuleConfig(tribes []TribeConfig) (*RuleConfig, error) {
	if len(tribes) == 0 {
		return nil, ErrNoTribes
	}
	if len(tribes) > MaxTribes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTribes, len(tribes), MaxTribes)
	}
	for i, t := range tribes {
		if t.ID != i {
			return nil, fmt.Errorf("%w: tribe %q has id %d at position %d", ErrTribeID, t.Name, t.ID, i)
		}
		if t.DecayRate <= 0 {
			return nil, fmt.Errorf("%w: tribe %q has decay %d", ErrDecayRate, t.Name, t.DecayRate)
		}
		if err := validateRuleSet(t.Survival); err != nil {
			return nil, fmt.Errorf("tribe %q survival: %w", t.Name, err)
		}
		if err := validateRuleSet(t.Birth); err != nil {
			return nil, fmt.Errorf("tribe %q birth: %w", t.Name, err)
		}
	}
	return &RuleConfig{tribes: append([]TribeConfig(nil), tribes...)}, nil
}

func validateRuleSet(s TribeRuleSet) error {
	for _, g := range s {
		for _, r := range g {
			if r.Kind > RuleRange {
				return fmt.Errorf("%w: %d", ErrRuleKind, r.Kind)
			}
		}
	}
	return nil
}

// Len returns the number of configured tribes.
func (c *RuleConfig) Len() int { return len(c.tribes) }

// Tribe returns the config for id. The id must be valid.
func (c *RuleConfig) Tribe(id int) TribeConfig { return c.tribes[id] }

// Has reports whether id names a configured tribe.
func (c *RuleConfig) Has(id int) bool { return id >= 0 && id < len(c.tribes) }

// Tribes returns a copy of the tribe table.
func (c *RuleConfig) Tribes() []TribeConfig {
	return append([]TribeConfig(nil), c.tribes...)
}

func (c *RuleConfig) decay(tribe int) int { return c.tribes[tribe].DecayRate }

// survives evaluates the survival rules of tribe.
func (c *RuleConfig) survives(tribe int, acc Accumulator) bool {
	return c.tribes[tribe].Survival.Eval(acc)
}

// birth returns the tribe born from acc, or -1. A later tribe only displaces
// the current candidate with a strictly higher priority.
func (c *RuleConfig) birth(acc Accumulator) int {
	winner := -1
	best := 0
	for i := range c.tribes {
		t := &c.tribes[i]
		if !t.Birth.Eval(acc) {
			continue
		}
		if winner < 0 || t.Priority > best {
			winner = t.ID
			best = t.Priority
		}
	}
	return winner
}
