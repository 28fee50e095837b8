package render

import (
	"fmt"

	"VoxelVision/cliente/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultLightDir é a direção padrão da luz direcional.
var DefaultLightDir = mgl32.Vec3{1, -0.5, -1}

// GPU é o colaborador que de fato fala com o driver.
// O atributo 0 do vertex buffer é a posição (3 floats); não há outros atributos.
type GPU interface {
	UploadVertices(vertices []float32) error
	UploadIndices(indices []uint32) error
	SetUniformMat4(name string, m mgl32.Mat4) error
	SetUniformVec3(name string, v mgl32.Vec3) error
	DrawIndexed(count int) error
}

// Camera é o que a submissão precisa da câmera a cada frame.
type Camera interface {
	ViewProjection() mgl32.Mat4
}

// Renderer submete a malha do mundo à GPU a cada frame.
// A câmera é apenas emprestada durante Draw.
type Renderer struct {
	gpu GPU

	Model    mgl32.Mat4 // Identidade para a geometria do mundo
	LightDir mgl32.Vec3

	Frames uint64 // Frames submetidos com sucesso
}

// NewRenderer cria um novo renderizador sobre a GPU informada.
func NewRenderer(gpu GPU) *Renderer {
	return &Renderer{
		gpu:      gpu,
		Model:    mgl32.Ident4(),
		LightDir: DefaultLightDir,
	}
}

// MVP retorna perspective * view * model.
func (r *Renderer) MVP(cam Camera) mgl32.Mat4 {
	return cam.ViewProjection().Mul4(r.Model)
}

// Draw recalcula as matrizes, envia os uniforms, reenvia os buffers inteiros
// e desenha todos os índices. Erros da GPU não são repetidos.
func (r *Renderer) Draw(cam Camera, geo meshing.GeometryData) error {
	if err := r.gpu.SetUniformMat4(UniformMVP, r.MVP(cam)); err != nil {
		return fmt.Errorf("uniform %s: %w", UniformMVP, err)
	}
	if err := r.gpu.SetUniformVec3(UniformLightDir, r.LightDir); err != nil {
		return fmt.Errorf("uniform %s: %w", UniformLightDir, err)
	}

	if len(geo.Indices) == 0 {
		return nil
	}

	if err := r.gpu.UploadIndices(geo.Indices); err != nil {
		return fmt.Errorf("upload de índices: %w", err)
	}
	if err := r.gpu.UploadVertices(geo.Vertices); err != nil {
		return fmt.Errorf("upload de vértices: %w", err)
	}
	if err := r.gpu.DrawIndexed(len(geo.Indices)); err != nil {
		return fmt.Errorf("desenho indexado: %w", err)
	}

	r.Frames++
	return nil
}
