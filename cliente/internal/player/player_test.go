package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// near compara com tolerância absoluta por componente.
func near(a, b mgl32.Vec3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-5 {
			return false
		}
	}
	return true
}

func TestDisplaceMovesCamera(t *testing.T) {
	p := New(mgl32.Vec3{1, 2, 3}, nil)
	p.Displace(mgl32.Vec3{0.1, 0, 0})

	assert.True(t, near(mgl32.Vec3{1.1, 2, 3}, p.Position))
	assert.True(t, near(p.Position, p.Camera.Position))
}

func TestMoveForwardFlying(t *testing.T) {
	p := New(mgl32.Vec3{}, nil)
	p.Camera.Pitch(-math.Pi / 4) // olha para cima e para frente

	p.MoveForward()
	assert.InDelta(t, DefaultSpeed, p.Position.Len(), 1e-6)
	assert.True(t, near(p.Camera.LookDir().Mul(DefaultSpeed), p.Position))

	p.MoveBackward()
	assert.True(t, near(mgl32.Vec3{}, p.Position))
}

func TestMoveForwardWalkingStaysOnGround(t *testing.T) {
	p := New(mgl32.Vec3{}, nil)
	p.Flying = false
	p.Camera.Pitch(-math.Pi / 4)

	p.MoveForward()
	assert.InDelta(t, 0, p.Position.Y(), 1e-6)
	assert.InDelta(t, DefaultSpeed, p.Position.Len(), 1e-6)
}

func TestStrafe(t *testing.T) {
	p := New(mgl32.Vec3{}, nil)

	p.MoveLeft()
	assert.True(t, near(mgl32.Vec3{DefaultSpeed, 0, 0}, p.Position))

	p.MoveRight()
	p.MoveRight()
	assert.True(t, near(mgl32.Vec3{-DefaultSpeed, 0, 0}, p.Position))
}

func TestAscendAndLook(t *testing.T) {
	p := New(mgl32.Vec3{}, nil)
	p.Ascend(0.5)
	assert.True(t, near(mgl32.Vec3{0, 0.5, 0}, p.Camera.Position))

	p.Look(math.Pi/2, 0)
	assert.True(t, near(mgl32.Vec3{1, 0, 0}, p.Camera.LookDir()))
}
