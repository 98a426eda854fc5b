package app

import (
	"flag"
	"testing"

	_ "fieldplot/internal/sims/gaussian"
	_ "fieldplot/internal/sims/wave"

	"go.uber.org/multierr"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-sources", "gaussian, wave", "-rows", "2", "-cols", "3", "-cmap", "gray", "-filter", "linear", "-debug"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cfg.SourceList(); len(got) != 2 || got[0] != "gaussian" || got[1] != "wave" {
		t.Fatalf("SourceList = %q", got)
	}
	if r, c := cfg.Grid(2); r != 2 || c != 3 {
		t.Fatalf("Grid = %dx%d, want 2x3", r, c)
	}
	if cfg.ColorMap != "gray" || cfg.Filter != "linear" || !cfg.Debug {
		t.Fatalf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := NewConfig()
	cfg.Sources = "gaussian,nope"
	cfg.Rows = 2
	cfg.TPS = 0
	cfg.ColorMap = "viridis"
	cfg.Filter = "cubic"

	errs := multierr.Errors(cfg.Validate())
	if len(errs) != 5 {
		t.Fatalf("got %d errors, want 5: %v", len(errs), errs)
	}
}

func TestValidateRejectsGridSmallerThanSources(t *testing.T) {
	cfg := NewConfig()
	cfg.Sources = "gaussian,wave,gaussian"
	cfg.Rows, cfg.Cols = 1, 2
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for 3 sources in a 1x2 grid")
	}
	cfg.Cols = 3
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate 1x3: %v", err)
	}
}

func TestAutoGrid(t *testing.T) {
	tests := []struct{ n, rows, cols int }{
		{0, 1, 1},
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 2},
		{4, 2, 2},
		{5, 2, 3},
		{9, 3, 3},
		{10, 3, 4},
	}
	for _, tt := range tests {
		if r, c := AutoGrid(tt.n); r != tt.rows || c != tt.cols {
			t.Errorf("AutoGrid(%d) = %dx%d, want %dx%d", tt.n, r, c, tt.rows, tt.cols)
		}
	}
}
