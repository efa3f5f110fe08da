package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	parsed, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(parsed, Default()) {
		t.Errorf("embedded YAML and Default() diverge:\nyaml:    %+v\ndefault: %+v", parsed, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) = %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	cfg := Default()
	if len(cfg.Grid.Path) != 24 {
		t.Fatalf("expected 24 waypoints, got %d", len(cfg.Grid.Path))
	}
	if cfg.Grid.Path[0] != (Cell{Col: 0, Row: 1}) {
		t.Errorf("entrance = %+v, expected (0,1)", cfg.Grid.Path[0])
	}
	if cfg.Grid.Path[23] != (Cell{Col: 1, Row: 11}) {
		t.Errorf("exit = %+v, expected (1,11)", cfg.Grid.Path[23])
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("game:\n  starting_gold: 500\n  starting_lives: 9\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.StartingGold != 500 || cfg.Game.StartingLives != 9 {
		t.Errorf("overrides not applied: %+v", cfg.Game)
	}
	// Untouched sections keep their defaults
	if cfg.Grid.Cols != 8 || len(cfg.Defenders) != 6 {
		t.Errorf("partial file should keep defaults, got cols=%d defenders=%d", cfg.Grid.Cols, len(cfg.Defenders))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not, a, map"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestMarshalRoundTripKeepsPath(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Grid.Path, Default().Grid.Path) {
		t.Error("path changed across marshal/parse")
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Grid.Path = append(cfg.Grid.Path, Cell{Col: 99, Row: 0})
	cfg.Waves.Rotation = []string{"goblin", "dragon"}
	cfg.Game.StartingLives = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error should wrap ErrInvalid: %v", err)
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 3 {
		t.Errorf("expected 3 problems, got %d: %v", n, err)
	}
}

func TestValidateEnemySpeed(t *testing.T) {
	for _, speed := range []float64{0, -10} {
		cfg := Default()
		goblin := cfg.Enemies["goblin"]
		goblin.Speed = speed
		cfg.Enemies["goblin"] = goblin

		err := Validate(cfg)
		if err == nil {
			t.Errorf("Validate() with goblin speed %v = nil, expected error", speed)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("error should wrap ErrInvalid: %v", err)
		}
	}
}

func TestValidateRepeatedPathCell(t *testing.T) {
	cfg := Default()
	cfg.Grid.Path = append(cfg.Grid.Path, cfg.Grid.Path[0])
	if err := Validate(cfg); err == nil {
		t.Error("expected error for repeated path cell")
	}
}

func TestDefenderKindsOrder(t *testing.T) {
	got := Default().DefenderKinds()
	want := []string{"battleMage", "alchemist", "enchanter", "necromancer", "elementalist", "diviner"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefenderKinds() = %v, expected %v", got, want)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := ApplyPreset(base, DifficultyEasy)
	if easy.Game.StartingGold != 150 || easy.Game.StartingLives != 5 {
		t.Errorf("easy economy = %+v", easy.Game)
	}
	if easy.Waves.EnemyHealthScale >= base.Waves.EnemyHealthScale {
		t.Errorf("easy should soften health growth, got %v", easy.Waves.EnemyHealthScale)
	}

	hard := ApplyPreset(base, DifficultyHard)
	if hard.Game.StartingGold != 75 || hard.Game.StartingLives != 2 {
		t.Errorf("hard economy = %+v", hard.Game)
	}

	fixed := ApplyPreset(base, DifficultyFixed)
	if !IsFixedPreset(DifficultyFixed) {
		t.Error("fixed should report as fixed")
	}
	if fixed.Waves.EnemyHealthScale != 1 || fixed.Waves.EnemySpeedScale != 1 {
		t.Errorf("fixed should disable scaling, got %+v", fixed.Waves)
	}

	normal := ApplyPreset(base, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal should leave settings unchanged")
	}

	// Presets never mutate the input
	if base.Game.StartingGold != 100 || base.Waves.EnemyHealthScale != 1.15 {
		t.Error("ApplyPreset mutated its input")
	}
}
