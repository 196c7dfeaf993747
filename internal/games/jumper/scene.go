package jumper

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// tileLayer keeps the world position of every spawned tile object.
type tileLayer struct {
	tiles map[int]core.Vec2
}

func newTileLayer() *tileLayer {
	return &tileLayer{tiles: make(map[int]core.Vec2)}
}

func (l *tileLayer) Clear() {
	clear(l.tiles)
}

func (l *tileLayer) Place(i int, pos core.Vec2) {
	l.tiles[i] = pos
}

// indices returns spawned tile indices in road order.
func (l *tileLayer) indices() []int {
	idx := make([]int, 0, len(l.tiles))
	for i := range l.tiles {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// label is a text widget drawn by the renderer.
type label struct {
	text string
}

func (l *label) SetText(text string) { l.text = text }

// panel is a widget that can be shown or hidden.
type panel struct {
	visible bool
}

func (p *panel) SetVisible(v bool) { p.visible = v }

// clipAnimator plays named clips of fixed length. The renderer reads its
// progress to draw the jump arc.
type clipAnimator struct {
	clips   map[string]time.Duration
	current string
	elapsed time.Duration
	length  time.Duration
}

func newClipAnimator(clips map[string]time.Duration) *clipAnimator {
	c := make(map[string]time.Duration, len(clips))
	for k, v := range clips {
		c[k] = v
	}
	return &clipAnimator{clips: c}
}

func (a *clipAnimator) ClipDuration(name string) (time.Duration, bool) {
	d, ok := a.clips[name]
	return d, ok
}

// Play starts name from the beginning. Unknown clips are ignored.
func (a *clipAnimator) Play(name string) {
	d, ok := a.clips[name]
	if !ok {
		return
	}
	a.current = name
	a.elapsed = 0
	a.length = d
}

// Update advances the playing clip; a finished clip stops.
func (a *clipAnimator) Update(dt time.Duration) {
	if a.current == "" {
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.length {
		a.current = ""
		a.elapsed = 0
	}
}

// Playing returns the current clip name, or "" when idle.
func (a *clipAnimator) Playing() string { return a.current }

// Progress returns the playing clip's completed fraction in [0, 1].
func (a *clipAnimator) Progress() float64 {
	if a.current == "" || a.length <= 0 {
		return 0
	}
	return core.ClampF(float64(a.elapsed)/float64(a.length), 0, 1)
}
