package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDragTrackerQueuesOnRelease(t *testing.T) {
	d := NewDragTracker()
	assert.Nil(t, d.Drain())

	d.Press(mgl32.Vec2{0, 0})
	assert.True(t, d.Active())
	d.Move(mgl32.Vec2{0.05, 0})
	start, end := d.Line()
	assert.Equal(t, mgl32.Vec2{0, 0}, start)
	assert.Equal(t, mgl32.Vec2{0.05, 0}, end)
	assert.Nil(t, d.Drain(), "nothing queued before release")

	d.Release(mgl32.Vec2{0.1, 0})
	assert.False(t, d.Active())
	assert.Equal(t, []SpawnRequest{{Start: mgl32.Vec2{0, 0}, End: mgl32.Vec2{0.1, 0}}}, d.Drain())
	assert.Nil(t, d.Drain(), "drain empties the queue")
}

func TestDragTrackerOrderAndStrayEvents(t *testing.T) {
	d := NewDragTracker()
	d.Release(mgl32.Vec2{0.3, 0.3})
	d.Move(mgl32.Vec2{0.4, 0.4})
	assert.False(t, d.Active())

	d.Press(mgl32.Vec2{-0.5, 0})
	d.Release(mgl32.Vec2{-0.4, 0})
	d.Press(mgl32.Vec2{0.5, 0})
	d.Release(mgl32.Vec2{0.6, 0.1})
	d.Press(mgl32.Vec2{0.9, 0.9})
	d.Cancel()

	got := d.Drain()
	if assert.Len(t, got, 2) {
		assert.Equal(t, mgl32.Vec2{-0.5, 0}, got[0].Start)
		assert.Equal(t, mgl32.Vec2{0.5, 0}, got[1].Start)
		assert.Equal(t, mgl32.Vec2{0.6, 0.1}, got[1].End)
	}
}

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		x, y float32
		want mgl32.Vec2
	}{
		{0, 0, mgl32.Vec2{-1, 1}},
		{800, 600, mgl32.Vec2{1, -1}},
		{400, 300, mgl32.Vec2{0, 0}},
		{600, 150, mgl32.Vec2{0.5, 0.5}},
	}
	for _, tt := range tests {
		got := ScreenToNDC(tt.x, tt.y, 800, 600)
		assert.Equal(t, tt.want, got)
		x, y := NDCToScreen(got, 800, 600)
		assert.InDelta(t, tt.x, x, 1e-3)
		assert.InDelta(t, tt.y, y, 1e-3)
	}
}
