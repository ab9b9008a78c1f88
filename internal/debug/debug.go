package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// refreshInterval: text is rebuilt every N frames to limit allocations.
	refreshInterval = 30
)

// Overlay draws runtime counters in the top-right corner. Everything is off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Stats, when set, contributes extra lines (e.g. logic ticks).
	Stats func() []string

	fps      func() int32
	memAlloc func() uint64
	frame    uint32
	lines    []string
}

// New returns an Overlay reading FPS from raylib and heap size from the Go runtime.
func New() *Overlay {
	return &Overlay{
		fps: rl.GetFPS,
		memAlloc: func() uint64 {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			return ms.Alloc
		},
	}
}

// Lines advances the frame counter and returns the text to show, rebuilt every
// refreshInterval frames or when nothing has been built yet.
func (o *Overlay) Lines() []string {
	o.frame++
	if o.lines != nil && o.frame%refreshInterval != 0 {
		return o.lines
	}
	lines := make([]string, 0, 4)
	if o.ShowFPS {
		lines = append(lines, fmt.Sprintf("FPS: %d", o.fps()))
	}
	if o.ShowMemAlloc {
		lines = append(lines, fmt.Sprintf("Mem: %.2f MiB", float64(o.memAlloc())/(1024*1024)))
	}
	if o.Stats != nil {
		lines = append(lines, o.Stats()...)
	}
	o.lines = lines
	return lines
}

// Draw renders the overlay in screen space. Call after the 3D pass, inside BeginDrawing.
func (o *Overlay) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range o.Lines() {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
