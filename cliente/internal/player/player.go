package player

import (
	"VoxelVision/cliente/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultSpeed  float32 = 0.1
	DefaultFOV    float32 = 60.0
	DefaultAspect float32 = 4.0 / 3.0
)

// Player é o dono da câmera e traduz comandos de movimento em translações.
type Player struct {
	Position mgl32.Vec3
	Camera   *camera.Camera
	Speed    float32
	Flying   bool // Voando: anda na direção exata da visão
}

// New cria o jogador com uma câmera posicionada em pos.
func New(pos mgl32.Vec3, cam *camera.Camera) *Player {
	if cam == nil {
		cam = camera.New(DefaultFOV, pos, DefaultAspect)
	}
	cam.Position = pos
	return &Player{
		Position: pos,
		Camera:   cam,
		Speed:    DefaultSpeed,
		Flying:   true,
	}
}

// Displace move o jogador e a câmera juntos.
func (p *Player) Displace(delta mgl32.Vec3) {
	p.Position = p.Position.Add(delta)
	p.Camera.Translate(delta)
}

// forward é a direção de caminhada: a visão inteira em voo, ou sua projeção
// horizontal no chão.
func (p *Player) forward() mgl32.Vec3 {
	dir := p.Camera.LookDir()
	if p.Flying {
		return dir
	}
	dir[1] = 0
	if dir.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return dir.Normalize()
}

// MoveForward anda para frente.
func (p *Player) MoveForward() {
	p.Displace(p.forward().Mul(p.Speed))
}

// MoveBackward anda para trás.
func (p *Player) MoveBackward() {
	p.Displace(p.forward().Mul(-p.Speed))
}

// MoveLeft anda ao longo do primeiro eixo da câmera.
// Olhando para +Z, esse eixo (+X) fica à esquerda na tela.
func (p *Player) MoveLeft() {
	p.Displace(p.Camera.Right().Mul(p.Speed))
}

// MoveRight anda no sentido oposto de MoveLeft.
func (p *Player) MoveRight() {
	p.Displace(p.Camera.Right().Mul(-p.Speed))
}

// Ascend sobe no eixo Y do mundo.
func (p *Player) Ascend(units float32) {
	p.Displace(mgl32.Vec3{0, units, 0})
}

// Look aplica yaw (theta) e depois pitch (azimuth), em radianos.
func (p *Player) Look(theta, azimuth float32) {
	p.Camera.Yaw(theta)
	p.Camera.Pitch(azimuth)
}
