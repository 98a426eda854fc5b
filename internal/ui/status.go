package ui

import "fmt"

// Status is the information shown in the overlay.
type Status struct {
	Title  string
	Rows   int
	Cols   int
	Paused bool
	TPS    float64
	FPS    float64
	CMap   string
	Scale  float64
}

// Lines formats the status as the overlay's text lines.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		s.Title,
		fmt.Sprintf("grid %dx%d  %s  cmap %s ±%g", s.Rows, s.Cols, state, s.CMap, s.Scale),
		fmt.Sprintf("TPS %.1f  FPS %.1f", s.TPS, s.FPS),
	}
}
