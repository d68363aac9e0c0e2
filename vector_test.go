package wiresphere

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkVectorCross(b *testing.B) {

	b.StopTimer()

	vecs := make([]Vector, 0, 1200)
	for i := 0; i < cap(vecs); i++ {
		vecs = append(vecs, NewVector(rand.Float64(), rand.Float64(), rand.Float64()))
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < len(vecs)-1; i++ {
			vecs[i].Cross(vecs[i+1])
		}
	}

}

func TestVectorCross(t *testing.T) {
	assert.True(t, WorldRight.Cross(WorldUp).Equals(WorldBackward), "right x up should be backward (+Z)")
	assert.True(t, WorldUp.Cross(WorldBackward).Equals(WorldRight))
	assert.True(t, WorldBackward.Cross(WorldRight).Equals(WorldUp))
}

func TestVectorUnit(t *testing.T) {

	v := NewVector(30, -40, -90).Unit()
	assert.InDelta(t, 1, v.Magnitude(), 1e-9)

	zero := NewVectorZero().Unit()
	assert.True(t, zero.IsZero(), "the unit of a zero vector should stay zero rather than become NaN")
	assert.False(t, math.IsNaN(zero.X))

}

func TestVectorArithmetic(t *testing.T) {

	a := NewVector(1, 2, 3)
	b := NewVector(-4, 5, 0.5)

	assert.Equal(t, NewVector(-3, 7, 3.5), a.Add(b))
	assert.Equal(t, NewVector(5, -3, 2.5), a.Sub(b))
	assert.Equal(t, NewVector(2, 4, 6), a.Scale(2))
	assert.Equal(t, NewVector(-1, -2, -3), a.Invert())
	assert.InDelta(t, 7.5, a.Dot(b), 1e-9)
	assert.InDelta(t, math.Sqrt(14), a.Magnitude(), 1e-9)
	assert.InDelta(t, a.Sub(b).Magnitude(), a.Distance(b), 1e-9)
	assert.True(t, a.Lerp(b, 0.5).Equals(NewVector(-1.5, 3.5, 1.75)))

}
