package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

type envTestConfig struct {
	Size int    `env:"HEX_TRIBES_TEST_SIZE"`
	Name string `env:"HEX_TRIBES_TEST_NAME" envDefault:"sym62"`
}

func TestParseEnvKeepsPresetValues(t *testing.T) {
	cfg := envTestConfig{Size: 53}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Size != 53 {
		t.Fatalf("size = %d, want preset 53", cfg.Size)
	}
	if cfg.Name != "sym62" {
		t.Fatalf("name = %q, want default sym62", cfg.Name)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("HEX_TRIBES_TEST_SIZE", "101")
	t.Setenv("HEX_TRIBES_TEST_NAME", "sym3")
	cfg := envTestConfig{Size: 53}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Size != 101 || cfg.Name != "sym3" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("HEX_TRIBES_TEST_SIZE", "big")
	var cfg envTestConfig
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("HEX_TRIBES_EXITF_SUBPROCESS") == "1" {
		Exitf("bad size %d", 3)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "HEX_TRIBES_EXITF_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "Error: bad size 3") {
		t.Fatalf("stderr = %q", out)
	}
}
