package hexlife

import "image/color"

// Tribe ids of the reference table.
const (
	Blue = iota
	Red
	Green
	Purple
)

var (
	wBlue      = Weights{1, 0, 0, 0, 0}
	wRed       = Weights{0, 1, 0, 0, 0}
	wGreen     = Weights{0, 0, 1, 0, 0}
	wPurple    = Weights{0, 0, 0, 1, 0}
	wBlueRed   = Weights{1, 1, 0, 0, 0}
	wBlueRed2  = Weights{1, 2, 0, 0, 0}
	wBlueRedGr = Weights{1, 1, 1, 0, 0}
)

// DefaultTribes returns the reference four-tribe table.
func DefaultTribes() []TribeConfig {
	return []TribeConfig{
		{
			ID:        Blue,
			Name:      "Blue",
			Color:     color.RGBA{R: 0, G: 50, B: 255, A: 255},
			Priority:  2,
			DecayRate: 4,
			Survival:  Only(AtLeast(wBlue, 7), AtMost(wBlueRed2, 29)),
			Birth: Either(
				RuleGroup{Between(wBlue, 20, 22), Between(wRed, 0, 19)},
				RuleGroup{Between(wBlue, 20, 22), AtLeast(wRed, 21)},
			),
		},
		{
			ID:        Red,
			Name:      "Red",
			Color:     color.RGBA{R: 255, G: 0, B: 0, A: 255},
			Priority:  1,
			DecayRate: 4,
			Survival:  Only(AtLeast(wRed, 11), AtMost(wBlueRed, 37)),
			Birth: Either(
				RuleGroup{Exactly(wRed, 20), Between(wBlue, 0, 19)},
				RuleGroup{Exactly(wRed, 20), AtLeast(wBlue, 23)},
			),
		},
		{
			ID:        Green,
			Name:      "Green",
			Color:     color.RGBA{R: 0, G: 255, B: 0, A: 255},
			Priority:  0,
			DecayRate: 4,
			Survival:  Only(AtLeast(wBlueRedGr, 22), AtMost(wGreen, 24)),
			Birth: Either(
				RuleGroup{Between(wGreen, 20, 21), AtLeast(wBlueRed, 15)},
				RuleGroup{Between(wBlue, 14, 19), Between(wRed, 14, 19)},
			),
		},
		{
			ID:        Purple,
			Name:      "Purple",
			Color:     color.RGBA{R: 180, G: 0, B: 180, A: 255},
			Priority:  3,
			DecayRate: 3,
			Survival:  Only(Between(wPurple, 11, 34), Always()),
			Birth:     Only(Between(wPurple, 21, 23), Always()),
		},
	}
}

var defaultRules = mustRuleConfig(DefaultTribes())

// DefaultRuleConfig returns the validated reference configuration.
func DefaultRuleConfig() *RuleConfig { return defaultRules }

func mustRuleConfig(tribes []TribeConfig) *RuleConfig {
	rc, err := NewRuleConfig(tribes)
	if err != nil {
		panic("hexlife: invalid built-in tribe table: " + err.Error())
	}
	return rc
}
