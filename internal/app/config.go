package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"fieldplot/internal/colormap"
	"fieldplot/internal/core"

	"go.uber.org/multierr"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sources  string
	Rows     int
	Cols     int
	Width    int
	Height   int
	TPS      int
	Steps    int
	ColorMap string
	Scale    float64
	Seed     int64
	Filter   string
	Workers  int
	Debug    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sources:  "gaussian",
		Width:    800,
		Height:   400,
		TPS:      60,
		Steps:    30,
		ColorMap: "redblue",
		Scale:    1,
		Seed:     42,
		Filter:   "nearest",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sources, "sources", c.Sources, "comma separated field sources, one cell each ("+strings.Join(core.SourceNames(), ", ")+")")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (0 picks a layout for the source count)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (0 picks a layout for the source count)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "source steps per second")
	fs.StringVar(&c.ColorMap, "cmap", c.ColorMap, "color map ("+strings.Join(colormap.Names, ", ")+")")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "magnitude mapped to the ends of the color map")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for source reset")
	fs.StringVar(&c.Filter, "filter", c.Filter, "texture filter (nearest, linear)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "color mapping goroutines (0 uses GOMAXPROCS)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "development logging and status overlay")
}

// SourceList splits Sources into trimmed, non-empty names.
func (c *Config) SourceList() []string {
	var names []string
	for _, name := range strings.Split(c.Sources, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Grid returns the configured rows and columns, choosing a near-square
// layout for n sources when either is zero.
func (c *Config) Grid(n int) (rows, cols int) {
	if c.Rows > 0 && c.Cols > 0 {
		return c.Rows, c.Cols
	}
	return AutoGrid(n)
}

// AutoGrid returns the smallest near-square grid holding n cells, preferring
// wide layouts.
func AutoGrid(n int) (rows, cols int) {
	if n < 1 {
		return 1, 1
	}
	cols = 1
	for cols*cols < n {
		cols++
	}
	rows = (n + cols - 1) / cols
	return rows, cols
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	names := c.SourceList()
	if len(names) == 0 {
		err = multierr.Append(err, errors.New("no sources given"))
	}
	for _, name := range names {
		if _, ok := core.Sources()[name]; !ok {
			err = multierr.Append(err, fmt.Errorf("unknown source %q", name))
		}
	}
	if c.Rows < 0 || c.Cols < 0 || (c.Rows == 0) != (c.Cols == 0) {
		err = multierr.Append(err, fmt.Errorf("grid %dx%d: rows and cols must both be positive or both zero", c.Rows, c.Cols))
	}
	if c.Rows > 0 && c.Cols > 0 && c.Rows*c.Cols < len(names) {
		err = multierr.Append(err, fmt.Errorf("grid %dx%d has fewer cells than the %d sources", c.Rows, c.Cols, len(names)))
	}
	if c.Width <= 0 || c.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		err = multierr.Append(err, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Steps <= 0 {
		err = multierr.Append(err, fmt.Errorf("steps %d must be positive", c.Steps))
	}
	if c.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("scale %v must be positive", c.Scale))
	}
	if _, cerr := colormap.ByName(c.ColorMap, c.Scale); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	if c.Filter != "nearest" && c.Filter != "linear" {
		err = multierr.Append(err, fmt.Errorf("unknown filter %q", c.Filter))
	}
	return err
}
