package system

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/flycam/ecs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	frameWindow = 120
	logInterval = 5 * time.Second
)

// FrameTimes is a rolling window of frame durations.
type FrameTimes struct {
	samples [frameWindow]time.Duration
	next    int
	count   int
	last    time.Time
}

// Record marks the end of a frame at now. The first call only sets the
// baseline.
func (f *FrameTimes) Record(now time.Time) {
	if !f.last.IsZero() {
		if d := now.Sub(f.last); d > 0 {
			f.samples[f.next] = d
			f.next = (f.next + 1) % frameWindow
			if f.count < frameWindow {
				f.count++
			}
		}
	}
	f.last = now
}

func (f *FrameTimes) Len() int {
	return f.count
}

// Average returns the mean frame duration, or 0 with no samples.
func (f *FrameTimes) Average() time.Duration {
	if f.count == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < f.count; i++ {
		total += f.samples[i]
	}
	return total / time.Duration(f.count)
}

func (f *FrameTimes) FPS() float64 {
	avg := f.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// DiagnosticsSystem draws the FPS overlay and, in debug mode, logs the
// average periodically.
type DiagnosticsSystem struct {
	Debug bool

	frames  FrameTimes
	now     func() time.Time
	lastLog time.Time
	face    *text.GoTextFace
}

func NewDiagnosticsSystem(debug bool) *DiagnosticsSystem {
	return &DiagnosticsSystem{Debug: debug, now: time.Now}
}

func (d *DiagnosticsSystem) Frames() *FrameTimes {
	return &d.frames
}

func (d *DiagnosticsSystem) Update(w *ecs.World) {
	if d == nil || !d.Debug {
		return
	}
	now := d.now()
	if d.lastLog.IsZero() {
		d.lastLog = now
		return
	}
	if now.Sub(d.lastLog) < logInterval {
		return
	}
	d.lastLog = now
	log.Printf("diagnostics: fps=%.1f frame=%s entities=%d", d.frames.FPS(), d.frames.Average(), len(w.Entities()))
}

func (d *DiagnosticsSystem) Draw(screen *ebiten.Image) {
	if d == nil || screen == nil {
		return
	}
	d.frames.Record(d.now())

	face := d.fontFace()
	if face == nil {
		return
	}

	const label = "FPS: "
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colornames.Gold)
	text.Draw(screen, label, face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(8+text.Advance(label, face), 8)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, fmt.Sprintf("%.0f", d.frames.FPS()), face, op)
}

func (d *DiagnosticsSystem) fontFace() *text.GoTextFace {
	if d.face != nil {
		return d.face
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("diagnostics: load font: %v", err)
		return nil
	}
	d.face = &text.GoTextFace{Source: src, Size: 20}
	return d.face
}
