package geom

import (
	"testing"

	"github.com/echoflaresat/geomkit/vectors"
	"github.com/stretchr/testify/assert"
)

func TestOrb(t *testing.T) {
	o := UnitOrb3()
	assert.NoError(t, o.Validate())
	assert.ErrorIs(t, NewOrb(v3{}, 0).Validate(), ErrNonPositiveRadius)

	assert.True(t, o.Contains(v3{}))
	assert.True(t, o.Contains(x(1)))
	assert.False(t, o.Contains(x(1.01)))

	assert.True(t, o.Intersection(NewOrb(x(2), 1)))
	assert.False(t, o.Intersection(NewOrb(x(2.5), 1)))

	moved := o.Translate(v3{X: 1, Y: 2, Z: 3})
	assert.Equal(t, NewOrb(v3{X: 1, Y: 2, Z: 3}, 1), moved)
	assert.Equal(t, 3.0, o.Scale(-3).Radius)
	assert.True(t, o.Equal(NewOrb(v3{}, 1)))
}

func TestOrb2D(t *testing.T) {
	circle := NewOrb(vectors.Vec2{X: 1, Y: 1}, 2)
	assert.True(t, circle.Contains(vectors.Vec2{X: 2, Y: 2}))
	assert.False(t, circle.Contains(vectors.Vec2{X: 3, Y: 3}))
	assert.Equal(t, "OB(c(V2(1,1)),r(2))", circle.String())
}

func TestOrbString(t *testing.T) {
	assert.Equal(t, "OB(c(V3(0,0,0)),r(1))", UnitOrb3().String())
}
