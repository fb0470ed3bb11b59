// Command tribes-census runs batches of seeded tribe lattices without a
// window and reports how they end. Batches can be stored in SQLite and
// listed or replayed from there later.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"hex-tribes/internal/census"
	"hex-tribes/internal/platform/config"
	"hex-tribes/pkg/sims/hexlife"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type envConfig struct {
	DB      string `env:"TRIBES_CENSUS_DB"`
	Workers int    `env:"TRIBES_CENSUS_WORKERS"`
}

type options struct {
	size        int
	generator   string
	seedTribes  string
	runs        int
	seed        int64
	generations int
	workers     int
	db          string
	jsonOut     bool
	verbose     bool
	list        bool
	show        string
}

func main() {
	env := envConfig{Workers: runtime.NumCPU()}
	if err := config.ParseEnv(&env); err != nil {
		config.Exitf("%v", err)
	}

	var opts options
	flag.IntVar(&opts.size, "size", 53, "lattice side length")
	flag.StringVar(&opts.generator, "generator", string(hexlife.GenSym62), "seed generator")
	flag.StringVar(&opts.seedTribes, "tribes", "0,1", "comma-separated seed tribe ids")
	flag.IntVar(&opts.runs, "runs", 32, "number of seeds to run")
	flag.Int64Var(&opts.seed, "seed", 1, "first seed")
	flag.IntVar(&opts.generations, "generations", 500, "generation budget per run")
	flag.IntVar(&opts.workers, "workers", env.Workers, "parallel runs")
	flag.StringVar(&opts.db, "db", env.DB, "SQLite file to store the batch in (empty to skip)")
	flag.BoolVar(&opts.jsonOut, "json", false, "write results as JSON")
	flag.BoolVar(&opts.verbose, "v", false, "log every finished run")
	flag.BoolVar(&opts.list, "list", false, "list stored batches and exit")
	flag.StringVar(&opts.show, "show", "", "print a stored batch and exit")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		config.Exitf("%v", err)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if opts.list || opts.show != "" {
		return browse(ctx, opts, out)
	}

	gen, err := hexlife.ParseGenerator(opts.generator)
	if err != nil {
		return err
	}
	seedTribes, err := parseTribes(opts.seedTribes)
	if err != nil {
		return err
	}

	batchID := uuid.NewString()
	slog.Info("census starting",
		"batch", batchID,
		"size", opts.size,
		"generator", gen,
		"runs", opts.runs,
		"generations", opts.generations,
		"workers", opts.workers,
	)

	start := time.Now()
	results, err := census.Run(ctx, census.Options{
		Size:           opts.size,
		Generator:      gen,
		SeedTribes:     seedTribes,
		FirstSeed:      opts.seed,
		Runs:           opts.runs,
		MaxGenerations: opts.generations,
		Workers:        opts.workers,
		OnResult: func(r census.Result) {
			slog.Debug("run finished",
				"seed", r.Seed,
				"generations", r.Generations,
				"extinct", r.Extinct,
				"alive", r.Alive(),
			)
		},
	})
	if err != nil {
		return err
	}

	summary := census.Summarize(results)
	generations := 0
	for _, r := range results {
		generations += r.Generations
	}
	slog.Info("census complete",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"generations", humanize.Comma(int64(generations)),
		"extinct", fmt.Sprintf("%d/%d", summary.Extinct, summary.Runs),
	)

	if opts.db != "" {
		if err := save(ctx, opts.db, batchID, results); err != nil {
			return err
		}
		slog.Info("batch stored", "db", opts.db, "batch", batchID)
	}

	if opts.jsonOut {
		return writeJSON(out, batchID, summary, results)
	}
	writeTable(out, results)
	writeSummary(out, summary)
	return nil
}

func parseTribes(v string) ([]int, error) {
	var ids []int
	for _, field := range strings.Split(v, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse tribe id %q: %w", field, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func save(ctx context.Context, path, batchID string, results []census.Result) error {
	store, err := census.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveBatch(ctx, batchID, results)
}

func browse(ctx context.Context, opts options, out io.Writer) error {
	if opts.db == "" {
		return fmt.Errorf("-db or TRIBES_CENSUS_DB is required with -list and -show")
	}
	store, err := census.Open(opts.db)
	if err != nil {
		return err
	}
	defer store.Close()

	if opts.list {
		batches, err := store.ListBatches(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "BATCH\tRUNS\tCREATED")
		for _, b := range batches {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", b.ID, b.Runs, humanize.Time(b.CreatedAt))
		}
		return tw.Flush()
	}

	results, err := store.ListRuns(ctx, opts.show)
	if err != nil {
		return err
	}
	summary := census.Summarize(results)
	if opts.jsonOut {
		return writeJSON(out, opts.show, summary, results)
	}
	writeTable(out, results)
	writeSummary(out, summary)
	return nil
}

func writeTable(out io.Writer, results []census.Result) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tGENERATIONS\tEXTINCT\tPEAK\tFINAL\tPOPULATION")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%t\t%s\t%s\t%v\n",
			r.Seed, r.Generations, r.Extinct, humanize.Comma(int64(r.PeakAlive)), humanize.Comma(int64(r.Alive())), r.Population)
	}
	tw.Flush()
}

func writeSummary(out io.Writer, s census.Summary) {
	fmt.Fprintf(out, "\n%d runs, %d extinct, mean %.1f generations (max %d)\n",
		s.Runs, s.Extinct, s.MeanGenerations, s.MaxGenerations)
	rules := hexlife.DefaultRuleConfig()
	for id, n := range s.Dominant {
		if n == 0 || !rules.Has(id) {
			continue
		}
		fmt.Fprintf(out, "  %s dominant in %s\n", rules.Tribe(id).Name, pluralRuns(n))
	}
}

func pluralRuns(n int) string {
	if n == 1 {
		return "1 run"
	}
	return fmt.Sprintf("%d runs", n)
}

type jsonReport struct {
	Batch   string          `json:"batch"`
	Summary census.Summary  `json:"summary"`
	Results []census.Result `json:"results"`
}

func writeJSON(out io.Writer, batchID string, summary census.Summary, results []census.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Batch: batchID, Summary: summary, Results: results})
}
