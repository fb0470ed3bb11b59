// Package census runs batches of independent tribe lattices headlessly and
// records how each run ends.
package census

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"hex-tribes/internal/sims/tribes"
	"hex-tribes/pkg/sims/hexlife"

	"github.com/google/uuid"
)

// ErrOptions reports an unusable census configuration.
var ErrOptions = errors.New("invalid census options")

// Options describes one batch. Seeds FirstSeed..FirstSeed+Runs-1 are run.
type Options struct {
	Size           int
	Generator      hexlife.Generator
	SeedTribes     []int
	FirstSeed      int64
	Runs           int
	MaxGenerations int
	Workers        int

	// OnResult, when set, is called from the collecting goroutine as each run
	// finishes, in completion order.
	OnResult func(Result)
}

// Result summarises a single run.
type Result struct {
	RunID       string
	Seed        int64
	Generator   hexlife.Generator
	Size        int
	Generations int
	Extinct     bool
	PeakAlive   int
	// Population holds the live count per tribe after the last generation.
	Population []int
}

// Alive returns the total final population.
func (r Result) Alive() int {
	total := 0
	for _, n := range r.Population {
		total += n
	}
	return total
}

func (o Options) validate() (Options, error) {
	if o.Size <= 0 {
		return o, fmt.Errorf("%w: size must be positive, got %d", ErrOptions, o.Size)
	}
	if o.Runs <= 0 {
		return o, fmt.Errorf("%w: runs must be positive, got %d", ErrOptions, o.Runs)
	}
	if o.MaxGenerations < 0 {
		return o, fmt.Errorf("%w: generations must not be negative, got %d", ErrOptions, o.MaxGenerations)
	}
	g, err := hexlife.ParseGenerator(string(o.Generator))
	if err != nil {
		return o, fmt.Errorf("%w: %w", ErrOptions, err)
	}
	o.Generator = g
	if len(o.SeedTribes) == 0 {
		o.SeedTribes = tribes.DefaultConfig().SeedTribes
	}
	rules := hexlife.DefaultRuleConfig()
	for _, id := range o.SeedTribes {
		if !rules.Has(id) {
			return o, fmt.Errorf("%w: unknown seed tribe %d", ErrOptions, id)
		}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	o.Workers = min(o.Workers, o.Runs)
	return o, nil
}

type job struct {
	index int
	seed  int64
}

type outcome struct {
	index  int
	result Result
	err    error
}

// Run executes the batch on a pool of workers, one lattice per run, and
// returns results in seed order. Cancellation is observed between
// generations; a cancelled batch returns the context error.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	outcomes := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := runOne(ctx, opts, j.seed)
				outcomes <- outcome{index: j.index, result: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < opts.Runs; i++ {
			select {
			case jobs <- job{index: i, seed: opts.FirstSeed + int64(i)}:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]Result, opts.Runs)
	var firstErr error
	for out := range outcomes {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
				cancel()
			}
			continue
		}
		results[out.index] = out.result
		if opts.OnResult != nil {
			opts.OnResult(out.result)
		}
	}
	if firstErr == nil && ctx.Err() != nil {
		firstErr = fmt.Errorf("census: %w", ctx.Err())
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func runOne(ctx context.Context, opts Options, seed int64) (Result, error) {
	world := tribes.NewWithConfig(tribes.Config{
		Size:       opts.Size,
		Seed:       seed,
		Generator:  opts.Generator,
		SeedTribes: slices.Clone(opts.SeedTribes),
	})
	peak := total(world.Population())
	for world.Alive() && world.Generation() < opts.MaxGenerations {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("census seed %d: %w", seed, err)
		}
		world.Step()
		peak = max(peak, total(world.Population()))
	}
	return Result{
		RunID:       uuid.NewString(),
		Seed:        seed,
		Generator:   opts.Generator,
		Size:        world.Size().W,
		Generations: world.Generation(),
		Extinct:     !world.Alive(),
		PeakAlive:   peak,
		Population:  world.Population(),
	}, nil
}

func total(counts []int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}
