package game

import "testing"

func TestTrail_DiscardsOldestPastCapacity(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(float64(i), float64(i*10))
	}

	if tr.Len() != 3 {
		t.Fatalf("Expected 3 points, got %d", tr.Len())
	}
	points := tr.Points()
	if points[0].X != 2 || points[2].X != 4 {
		t.Errorf("Expected points 2..4, got %v", points)
	}
	if last, ok := tr.Last(); !ok || last.Y != 40 {
		t.Errorf("Expected last point y=40, got %v", last)
	}
}

func TestTrail_Clear(t *testing.T) {
	tr := NewTrail(RankedTrailLength)
	tr.Push(1, 1)
	tr.Clear()

	if tr.Len() != 0 {
		t.Errorf("Expected empty trail, got %d", tr.Len())
	}
	if _, ok := tr.Last(); ok {
		t.Error("Expected no last point on an empty trail")
	}
}

func TestNewTrail_MinimumCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(1, 1)
	tr.Push(2, 2)
	if tr.Cap() != 1 || tr.Len() != 1 {
		t.Errorf("Expected capacity 1 holding 1 point, got cap=%d len=%d", tr.Cap(), tr.Len())
	}
}
