package game

import "github.com/gammazero/deque"

// Point is one pointer sample.
type Point struct {
	X, Y float64
}

// Trail keeps the most recent pointer samples of a slice gesture, oldest first.
// It exists for rendering; hit-testing only looks at the current pointer position.
type Trail struct {
	cap    int
	points deque.Deque[Point]
}

// NewTrail creates a trail holding at most capacity points.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{cap: capacity}
}

// Push appends a sample, discarding the oldest ones past capacity.
func (t *Trail) Push(x, y float64) {
	t.points.PushBack(Point{X: x, Y: y})
	for t.points.Len() > t.cap {
		t.points.PopFront()
	}
}

// Len returns the number of retained samples.
func (t *Trail) Len() int {
	return t.points.Len()
}

// Cap returns the maximum number of retained samples.
func (t *Trail) Cap() int {
	return t.cap
}

// Last returns the most recent sample.
func (t *Trail) Last() (Point, bool) {
	if t.points.Len() == 0 {
		return Point{}, false
	}
	return t.points.Back(), true
}

// Points returns a copy of the samples, oldest first.
func (t *Trail) Points() []Point {
	out := make([]Point, t.points.Len())
	for i := range out {
		out[i] = t.points.At(i)
	}
	return out
}

// Clear drops every sample.
func (t *Trail) Clear() {
	t.points.Clear()
}
