package census

// Summary aggregates a batch.
type Summary struct {
	Runs            int
	Extinct         int
	MeanGenerations float64
	MaxGenerations  int
	// Dominant counts, per tribe, the surviving runs in which that tribe had
	// the largest final population. Ties go to the lower tribe id.
	Dominant []int
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	gens := 0
	for _, r := range results {
		gens += r.Generations
		s.MaxGenerations = max(s.MaxGenerations, r.Generations)
		if r.Extinct {
			s.Extinct++
		}
		if len(r.Population) > len(s.Dominant) {
			s.Dominant = append(s.Dominant, make([]int, len(r.Population)-len(s.Dominant))...)
		}
		if tribe, ok := dominantTribe(r.Population); ok {
			s.Dominant[tribe]++
		}
	}
	s.MeanGenerations = float64(gens) / float64(len(results))
	return s
}

func dominantTribe(population []int) (int, bool) {
	best, bestCount := -1, 0
	for tribe, n := range population {
		if n > bestCount {
			best, bestCount = tribe, n
		}
	}
	return best, best >= 0
}
