package util

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Clamp limita v ao intervalo [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToRL converte um vetor do mathgl para o raylib.
func ToRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Brighten soma amount aos canais RGB, saturando em 255. Alpha não muda.
func Brighten(c rl.Color, amount uint8) rl.Color {
	up := func(v uint8) uint8 {
		return uint8(Clamp(float32(v)+float32(amount), 0, 255))
	}
	return rl.Color{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}

// FromArray converte um vetor vindo da configuração.
func FromArray(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3(a)
}

// Camera3D monta uma câmera do raylib equivalente à posição e direção dadas.
// Só serve para o estado de profundidade do BeginMode3D; a projeção real vem do mvp.
func Camera3D(pos, lookDir, up mgl32.Vec3, fovDegrees float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   ToRL(pos),
		Target:     ToRL(pos.Add(lookDir)),
		Up:         ToRL(up),
		Fovy:       fovDegrees,
		Projection: rl.CameraPerspective,
	}
}
