package canvas

import (
	"math"
	"strconv"
)

const (
	// BaseGridSize is the main grid cell size in world units at scale 1.
	BaseGridSize = 100.0
	// MinGridSize and MaxGridSize clamp the adaptive main cell size.
	MinGridSize = 0.001
	MaxGridSize = 100000.0
	// SubDivisions is the number of sub-intervals per main cell.
	SubDivisions = 5
	// subGridMinPx is the on-screen sub-cell size below which the
	// sub-grid is hidden to avoid visual flooding at extreme zoom-out.
	subGridMinPx = 8.0
	// tickTargetPx is the target screen distance between labeled ticks.
	tickTargetPx = 80.0
)

// GridMetrics describes the grid the renderer should draw at a given
// zoom level. All sizes are world units.
type GridMetrics struct {
	Main    float64 `json:"main"`
	Sub     float64 `json:"sub"`
	ShowSub bool    `json:"showSub"`
}

// AdaptiveGrid computes grid spacing for a scale. The main cell size
// halves for every doubling of scale so cells stay a steady on-screen
// size; the sub-grid is gated on a legibility threshold.
func AdaptiveGrid(scale float64) GridMetrics {
	main := BaseGridSize * math.Pow(2, -math.Floor(math.Log2(scale)))
	if main < MinGridSize {
		main = MinGridSize
	}
	if main > MaxGridSize {
		main = MaxGridSize
	}

	sub := main / SubDivisions
	return GridMetrics{
		Main:    main,
		Sub:     sub,
		ShowSub: sub*scale >= subGridMinPx,
	}
}

// TickSpacing returns the world-space distance between labeled axis
// ticks: the spacing closest to 80 screen pixels rounded to a "nice"
// 1/2/5/10 value. Non-increasing as scale grows.
func TickSpacing(scale float64) float64 {
	world := tickTargetPx / scale
	magnitude := math.Pow(10, math.Floor(math.Log10(world)))
	normalized := world / magnitude

	var nice float64
	switch {
	case normalized < 1.5:
		nice = 1
	case normalized < 3:
		nice = 2
	case normalized < 7:
		nice = 5
	default:
		nice = 10
	}

	return nice * magnitude
}

// FormatTickLabel formats an axis label value: exponential notation for
// very small or very large magnitudes, otherwise trimmed to at most 3
// decimals with near-zero values snapped to "0".
func FormatTickLabel(v float64) string {
	abs := math.Abs(v)
	if v != 0 && (abs < 1e-4 || abs >= 1e4) {
		return strconv.FormatFloat(v, 'e', 2, 64)
	}

	rounded := math.Round(v*1000) / 1000
	if math.Abs(rounded) < 1e-3 {
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
