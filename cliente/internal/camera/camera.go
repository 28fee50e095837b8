package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mode define o tipo de projeção estritamente.
type Mode int

const (
	ModePerspective Mode = iota
	ModeOrthographic
)

const (
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 100.0

	// Meia altura do volume ortográfico em unidades do mundo
	orthoHalfHeight float32 = 20.0

	minAxisLen = 1e-8
)

// Camera mantém a posição e a base de orientação (direita, cima, frente) e
// produz as matrizes de view e projeção consumidas a cada frame.
//
// A orientação é um único quaternion acumulado; os três eixos são recalculados
// a partir dele depois de cada rotação, então permanecem ortonormais.
type Camera struct {
	Position mgl32.Vec3
	FOV      float32 // Radianos
	Aspect   float32
	Near     float32
	Far      float32
	Mode     Mode

	// Twist é o vetor "up" fixo usado no view, independente da orientação.
	Twist mgl32.Vec3

	basis       [3]mgl32.Vec3 // Base inicial (X, Y, Z do mundo)
	orientation mgl32.Quat
	axes        [3]mgl32.Vec3
}

// New cria uma câmera com fov em graus, olhando para +Z.
func New(fovDegrees float32, pos mgl32.Vec3, aspect float32) *Camera {
	return NewWithClip(fovDegrees, pos, aspect, DefaultNear, DefaultFar)
}

// NewWithClip cria uma câmera com planos near/far explícitos.
func NewWithClip(fovDegrees float32, pos mgl32.Vec3, aspect, near, far float32) *Camera {
	c := &Camera{
		Position:    pos,
		FOV:         mgl32.DegToRad(fovDegrees),
		Aspect:      aspect,
		Near:        near,
		Far:         far,
		Mode:        ModePerspective,
		Twist:       mgl32.Vec3{0, 1, 0},
		basis:       [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		orientation: mgl32.QuatIdent(),
	}
	c.updateAxes()
	return c
}

// Translate desloca a posição da câmera.
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.Position = c.Position.Add(delta)
}

// Ascend sobe (ou desce, se negativo) a câmera no eixo Y do mundo.
func (c *Camera) Ascend(units float32) {
	c.Position[1] += units
}

// Rotate gira a direção de visão e os três eixos pelo mesmo eixo-ângulo.
// Eixo nulo ou ângulo zero não alteram nada.
func (c *Camera) Rotate(axis mgl32.Vec3, angle float32) {
	length := axis.Len()
	if angle == 0 || length < minAxisLen {
		return
	}

	q := mgl32.QuatRotate(angle, axis.Mul(1/length))
	c.orientation = q.Mul(c.orientation).Normalize()
	c.updateAxes()
}

// Yaw gira em torno do eixo "cima" atual da câmera.
func (c *Camera) Yaw(angle float32) {
	c.Rotate(c.axes[1], angle)
}

// Pitch gira em torno do eixo "direita" atual da câmera.
func (c *Camera) Pitch(angle float32) {
	c.Rotate(c.axes[0], angle)
}

func (c *Camera) updateAxes() {
	for i, b := range c.basis {
		c.axes[i] = c.orientation.Rotate(b)
	}
}

// Axes retorna a base atual (direita, cima, frente).
func (c *Camera) Axes() [3]mgl32.Vec3 {
	return c.axes
}

// Right retorna o primeiro eixo da base.
func (c *Camera) Right() mgl32.Vec3 { return c.axes[0] }

// Up retorna o eixo "cima" da câmera (não o Twist).
func (c *Camera) Up() mgl32.Vec3 { return c.axes[1] }

// LookDir retorna a direção de visão.
func (c *Camera) LookDir() mgl32.Vec3 { return c.axes[2] }

// Target retorna o ponto para onde a câmera olha (posição + direção).
func (c *Camera) Target() mgl32.Vec3 {
	return c.Position.Add(c.LookDir())
}

// View retorna a matriz look-at de Position para Position+LookDir, usando o
// Twist fixo como "up".
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target(), c.Twist)
}

// Perspective retorna a matriz de projeção do modo atual.
func (c *Camera) Perspective() mgl32.Mat4 {
	if c.Mode == ModeOrthographic {
		h := orthoHalfHeight
		w := h * c.Aspect
		return mgl32.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection retorna perspective * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Perspective().Mul4(c.View())
}

// SetMode alterna entre Perspectiva e Ortográfica.
func (c *Camera) SetMode(mode Mode) {
	c.Mode = mode
}
