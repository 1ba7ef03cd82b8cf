package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var rr RiverRunConfig
	if err := yaml.Unmarshal(GetDefaultYAML("riverrun"), &rr); err != nil {
		t.Fatalf("riverrun.yaml: %v", err)
	}
	if !reflect.DeepEqual(rr, DefaultRiverRunConfig()) {
		t.Errorf("embedded riverrun.yaml drifted from DefaultRiverRunConfig:\n%+v\n%+v", rr, DefaultRiverRunConfig())
	}

	var inv InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML("invaders"), &inv); err != nil {
		t.Fatalf("invaders.yaml: %v", err)
	}
	if !reflect.DeepEqual(inv, DefaultInvadersConfig()) {
		t.Errorf("embedded invaders.yaml drifted from DefaultInvadersConfig:\n%+v\n%+v", inv, DefaultInvadersConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRiverRunConfig().Validate(); err != nil {
		t.Errorf("default riverrun config invalid: %v", err)
	}
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("default invaders config invalid: %v", err)
	}
}

func TestLoadRiverRunWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRiverRun("")
	if err != nil {
		t.Fatalf("LoadRiverRun() error: %v", err)
	}
	if cfg.Gameplay.KillPoints != 150 {
		t.Errorf("KillPoints = %d, expected 150", cfg.Gameplay.KillPoints)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rr.yaml")
	data := "gameplay:\n  lives: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRiverRun(path)
	if err != nil {
		t.Fatalf("LoadRiverRun() error: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected override 7", cfg.Gameplay.Lives)
	}
	if cfg.Ship.Speed != 220 {
		t.Errorf("unset keys should keep defaults, Ship.Speed = %v", cfg.Ship.Speed)
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "fleet:\n  rows: 3\n  cols: 4\n"
	if err := os.WriteFile(filepath.Join(dir, "invaders.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error: %v", err)
	}
	if cfg.Fleet.Rows != 3 || cfg.Fleet.Cols != 4 {
		t.Errorf("fleet = %dx%d, expected 3x4 from user config", cfg.Fleet.Rows, cfg.Fleet.Cols)
	}
}

func TestSource(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := Source("riverrun"); got != "embedded" {
		t.Errorf("Source() = %q without files, expected embedded", got)
	}

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "riverrun.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Source("riverrun"); got != path {
		t.Errorf("Source() = %q, expected %q", got, path)
	}

	// Malformed files are skipped
	if err := os.WriteFile(path, []byte("gameplay: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Source("riverrun"); got != "embedded" {
		t.Errorf("Source() = %q for a malformed file, expected embedded", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("ship: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", broken, "failed to parse"},
		{"invalid values", invalid, "lives must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadRiverRun(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Fleet.Rows = 0
	cfg.Gameplay.Points = nil
	cfg.Difficulty.Progression.Type = "sometimes"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"fleet", "points", "progression"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPresets(t *testing.T) {
	rr := DefaultRiverRunConfig()
	ApplyRiverRunPreset(&rr, DifficultyEasy)
	if rr.Gameplay.Lives != 5 || rr.Gameplay.FuelDrain != 3 {
		t.Errorf("easy riverrun: lives=%d drain=%v", rr.Gameplay.Lives, rr.Gameplay.FuelDrain)
	}

	rr = DefaultRiverRunConfig()
	ApplyRiverRunPreset(&rr, DifficultyFixed)
	if rr.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	inv := DefaultInvadersConfig()
	ApplyInvadersPreset(&inv, DifficultyHard)
	if inv.Gameplay.Lives != 2 || inv.Bomb.MaxBombs != 4 {
		t.Errorf("hard invaders: lives=%d bombs=%d", inv.Gameplay.Lives, inv.Bomb.MaxBombs)
	}
	if inv.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %v", inv.Difficulty.InitialLevel)
	}

	inv = DefaultInvadersConfig()
	ApplyInvadersPreset(&inv, "")
	if !reflect.DeepEqual(inv, DefaultInvadersConfig()) {
		t.Error("empty preset should leave config untouched")
	}
}
