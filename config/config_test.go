package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/arcade/defense"
)

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty input should parse: %v", err)
	}
	if cfg.Defense != defense.DefaultTuning() {
		t.Errorf("expected default tuning, got %+v", cfg.Defense)
	}
	if cfg.DBDriver != "sqlite" || cfg.Listen != ":8080" || cfg.Seed != 0 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestParseOverrides(t *testing.T) {
	input := `
# tuning
ARCADE_MAX_VIRUSES=12
ARCADE_WAVE_INTERVAL=20.5
ARCADE_OPENING_BOOST=3
ARCADE_SEED=42
ARCADE_DB_DRIVER=mysql
ARCADE_DB_DSN="user:pw@tcp(db:3306)/arcade"
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Defense.MaxViruses != 12 || cfg.Defense.WaveInterval != 20.5 || cfg.Defense.OpeningBoost != 3 {
		t.Errorf("tuning overrides not applied: %+v", cfg.Defense)
	}
	if cfg.Seed != 42 || cfg.DBDriver != "mysql" || cfg.DBDSN != "user:pw@tcp(db:3306)/arcade" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not a number", "ARCADE_MAX_CELLS=lots", KeyMaxCells},
		{"bad float", "ARCADE_GAME_DURATION=1..0", KeyGameDuration},
		{"bad seed", "ARCADE_SEED=-1", KeySeed},
		{"fails validation", "ARCADE_MAX_WAVES=0", "max waves"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ARCADE_MAX_CELLS=7\nARCADE_LISTEN=:9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(KeyMaxCells, "9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defense.MaxCells != 9 {
		t.Errorf("environment should override the file, got %d", cfg.Defense.MaxCells)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("file value should apply, got %q", cfg.Listen)
	}
	if _, ok := os.LookupEnv(KeyListen); ok {
		t.Error("Load must not export file values into the environment")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("explicit missing file should fail")
	}

	t.Chdir(t.TempDir())
	if _, err := Load(""); err != nil {
		t.Errorf("missing default file should be ignored, got %v", err)
	}
}
