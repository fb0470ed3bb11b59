package tribes

import (
	"slices"
	"strconv"

	"hex-tribes/internal/core"
	"hex-tribes/pkg/sims/hexlife"
)

const (
	paramSize        = "size"
	paramSeed        = "seed"
	paramGenerator   = "generator"
	paramSeedTribes  = "seed_tribes"
	paramGeneration  = "generation"
	populationPrefix = "population_"
)

// Parameters reports the world settings and live statistics.
func (w *World) Parameters() core.ParameterSnapshot {
	rules := w.lattice.Rules()
	population := w.Population()
	stats := []core.Parameter{intParam(paramGeneration, "Generation", w.generation)}
	for _, t := range rules.Tribes() {
		stats = append(stats, intParam(populationPrefix+t.Name, t.Name, population[t.ID]))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam(paramSize, "Size", w.cfg.Size),
				int64Param(paramSeed, "Seed", w.cfg.Seed),
				intParam(paramGenerator, "Generator", slices.Index(hexlife.Generators(), w.cfg.Generator)),
				stringParam(paramGenerator+"_name", "Generator name", string(w.cfg.Generator)),
				intParam(paramSeedTribes, "Seed tribes", len(w.cfg.SeedTribes)),
			},
		},
		{Name: "Population", Params: stats},
	}}
}

// ParameterControls lists the values the HUD may step.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramSize, Label: "Size", Step: 2, Min: minSize, Max: maxSize, HasMin: true, HasMax: true},
		{Key: paramGenerator, Label: "Generator", Step: 1, Min: 0, Max: len(hexlife.Generators()) - 1, HasMin: true, HasMax: true},
		{Key: paramSeedTribes, Label: "Seed tribes", Step: 1, Min: 1, Max: w.lattice.Rules().Len(), HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. Every accepted change reseeds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case paramSize:
		if value < minSize || value > maxSize {
			return false
		}
		w.Resize(value)
		return true
	case paramGenerator:
		gens := hexlife.Generators()
		if value < 0 || value >= len(gens) {
			return false
		}
		return w.SetGenerator(gens[value]) == nil
	case paramSeedTribes:
		if value < 1 || value > w.lattice.Rules().Len() {
			return false
		}
		ids := make([]int, value)
		for i := range ids {
			ids[i] = i
		}
		return w.SetSeedTribes(ids) == nil
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
