package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func testOptions(t *testing.T) options {
	return options{
		size:        15,
		generator:   "sym6",
		seedTribes:  "0,1",
		runs:        3,
		seed:        5,
		generations: 20,
		workers:     2,
		db:          filepath.Join(t.TempDir(), "census.db"),
	}
}

func TestRunWritesTableAndStoresBatch(t *testing.T) {
	opts := testOptions(t)
	var out bytes.Buffer
	if err := run(context.Background(), opts, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "SEED") || !strings.Contains(out.String(), "3 runs") {
		t.Fatalf("unexpected table output:\n%s", out.String())
	}

	out.Reset()
	list := opts
	list.list = true
	if err := run(context.Background(), list, &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("list output:\n%s", out.String())
	}
	batch := strings.Fields(lines[1])[0]

	out.Reset()
	show := opts
	show.show = batch
	show.jsonOut = true
	if err := run(context.Background(), show, &out); err != nil {
		t.Fatalf("show: %v", err)
	}
	var report jsonReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Batch != batch || len(report.Results) != 3 || report.Results[0].Seed != 5 {
		t.Fatalf("report = %+v", report)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	opts := testOptions(t)
	opts.generator = "symm62"
	err := run(context.Background(), opts, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "sym62") {
		t.Fatalf("err = %v, want suggestion", err)
	}

	opts = testOptions(t)
	opts.seedTribes = "0,x"
	if err := run(context.Background(), opts, &bytes.Buffer{}); err == nil {
		t.Fatal("bad tribe list accepted")
	}

	opts = testOptions(t)
	opts.db = ""
	opts.list = true
	if err := run(context.Background(), opts, &bytes.Buffer{}); err == nil {
		t.Fatal("-list without a database accepted")
	}
}

func TestParseTribes(t *testing.T) {
	ids, err := parseTribes(" 3, 1 ,")
	if err != nil || len(ids) != 2 || ids[0] != 3 || ids[1] != 1 {
		t.Fatalf("parseTribes = %v, %v", ids, err)
	}
}
