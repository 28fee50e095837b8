// Package rlgpu implementa render.GPU sobre o raylib.
package rlgpu

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"log"
	"unsafe"

	"VoxelVision/cliente/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Índices em shader.Locs e mesh.VboID usados pelo raylib.
const (
	shaderLocMatrixMVP = 6
	vboPositions       = 0
	vboIndices         = 6
)

// Backend envia a malha do mundo ao raylib. Exige uma janela aberta.
type Backend struct {
	shader   rl.Shader
	mvpLoc   int32
	lightLoc int32

	// Malha pendente, recebida em UploadVertices/UploadIndices.
	vertices []float32
	indices  []uint32

	// Estado do último envio.
	models   []rl.Model
	lastVert *float32
	lastInd  *uint32
	lastLen  [2]int

	Rebuilds int // Vezes em que os lotes foram reconstruídos
}

// NewBackend compila o shader de blocos e prepara o backend.
func NewBackend() (*Backend, error) {
	if !rl.IsWindowReady() {
		return nil, errors.New("janela do raylib não está pronta")
	}

	shader := rl.LoadShaderFromMemory(render.BlockVertexShader, render.BlockFragmentShader)
	if shader.ID == 0 {
		return nil, &render.ShaderError{Stage: "link", Log: "o driver recusou o programa, ver log do raylib"}
	}

	mvpLoc := rl.GetShaderLocation(shader, render.UniformMVP)
	if mvpLoc == -1 {
		rl.UnloadShader(shader)
		return nil, &render.ShaderError{Stage: "link", Log: "uniform " + render.UniformMVP + " ausente"}
	}

	// O mvp é nosso; sem isso o raylib sobrescreve o uniform em cada DrawMesh.
	locs := unsafe.Slice(shader.Locs, 32)
	locs[shaderLocMatrixMVP] = -1

	b := &Backend{
		shader:   shader,
		mvpLoc:   mvpLoc,
		lightLoc: rl.GetShaderLocation(shader, render.UniformLightDir),
	}
	log.Printf("[Renderer] Shader de blocos carregado (id=%d)", shader.ID)
	return b, nil
}

// UploadVertices guarda o vertex buffer para o próximo desenho.
func (b *Backend) UploadVertices(vertices []float32) error {
	b.vertices = vertices
	return nil
}

// UploadIndices guarda o index buffer para o próximo desenho.
func (b *Backend) UploadIndices(indices []uint32) error {
	b.indices = indices
	return nil
}

// SetUniformMat4 define um uniform mat4 no shader de blocos.
func (b *Backend) SetUniformMat4(name string, m mgl32.Mat4) error {
	loc := b.location(name)
	if loc == -1 {
		return fmt.Errorf("uniform %q não existe no shader", name)
	}
	rl.SetShaderValueMatrix(b.shader, loc, toMatrix(m))
	return nil
}

// SetUniformVec3 define um uniform vec3 no shader de blocos.
// Uniforms removidos pelo compilador são ignorados.
func (b *Backend) SetUniformVec3(name string, v mgl32.Vec3) error {
	loc := b.location(name)
	if loc == -1 {
		return nil
	}
	rl.SetShaderValue(b.shader, loc, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3)
	return nil
}

func (b *Backend) location(name string) int32 {
	switch name {
	case render.UniformMVP:
		return b.mvpLoc
	case render.UniformLightDir:
		return b.lightLoc
	default:
		return rl.GetShaderLocation(b.shader, name)
	}
}

// DrawIndexed desenha a malha pendente inteira. Os lotes só são recriados
// quando as fatias recebidas mudam.
func (b *Backend) DrawIndexed(count int) error {
	if count != len(b.indices) {
		return fmt.Errorf("contagem %d difere dos %d índices enviados", count, len(b.indices))
	}
	if count == 0 {
		return nil
	}
	if len(b.vertices) == 0 {
		return errors.New("índices enviados sem vértices")
	}

	if b.changed() {
		if err := b.rebuild(); err != nil {
			return err
		}
	}

	for _, model := range b.models {
		rl.DrawModel(model, rl.Vector3{}, 1.0, rl.White)
	}
	return nil
}

func (b *Backend) changed() bool {
	return len(b.models) == 0 ||
		b.lastVert != &b.vertices[0] || b.lastInd != &b.indices[0] ||
		b.lastLen != [2]int{len(b.vertices), len(b.indices)}
}

func (b *Backend) rebuild() error {
	batches, err := planBatches(len(b.vertices), len(b.indices))
	if err != nil {
		return err
	}

	b.unloadModels()
	for _, bt := range batches {
		model, err := b.uploadBatch(bt)
		if err != nil {
			b.unloadModels()
			return err
		}
		b.models = append(b.models, model)
	}

	b.lastVert = &b.vertices[0]
	b.lastInd = &b.indices[0]
	b.lastLen = [2]int{len(b.vertices), len(b.indices)}
	b.Rebuilds++
	log.Printf("[Renderer] Malha enviada: %d vértices, %d índices, %d lote(s)",
		len(b.vertices)/3, len(b.indices), len(batches))
	return nil
}

func (b *Backend) uploadBatch(bt batch) (rl.Model, error) {
	vStart, vEnd := bt.vertexRange()
	verts := b.vertices[vStart:vEnd]
	inds := localIndices(b.indices, bt)

	vBytes := len(verts) * 4
	iBytes := len(inds) * 2

	var mesh rl.Mesh
	mesh.VertexCount = int32(len(verts) / 3)
	mesh.TriangleCount = int32(len(inds) / 3)

	vPtr := copyToC(unsafe.Pointer(&verts[0]), vBytes)
	if vPtr == nil {
		return rl.Model{}, &render.BufferAllocError{Target: render.VertexBuffer, Bytes: vBytes}
	}
	iPtr := copyToC(unsafe.Pointer(&inds[0]), iBytes)
	if iPtr == nil {
		C.free(vPtr)
		return rl.Model{}, &render.BufferAllocError{Target: render.IndexBuffer, Bytes: iBytes}
	}
	mesh.Vertices = (*float32)(vPtr)
	mesh.Indices = (*uint16)(iPtr)

	rl.UploadMesh(&mesh, false)
	freeMeshRAM(&mesh)

	if mesh.VaoID == 0 || mesh.VboID == nil {
		return rl.Model{}, &render.BufferAllocError{Target: render.VertexBuffer, Bytes: vBytes}
	}
	vbos := unsafe.Slice(mesh.VboID, 7)
	if vbos[vboPositions] == 0 {
		rl.UnloadMesh(&mesh)
		return rl.Model{}, &render.BufferAllocError{Target: render.VertexBuffer, Bytes: vBytes}
	}
	if vbos[vboIndices] == 0 {
		rl.UnloadMesh(&mesh)
		return rl.Model{}, &render.BufferAllocError{Target: render.IndexBuffer, Bytes: iBytes}
	}

	model := rl.LoadModelFromMesh(mesh)
	if model.MaterialCount > 0 {
		materials := unsafe.Slice(model.Materials, model.MaterialCount)
		materials[0].Shader = b.shader
	}
	return model, nil
}

func (b *Backend) unloadModels() {
	for _, m := range b.models {
		rl.UnloadModel(m)
	}
	b.models = b.models[:0]
}

// Batches retorna quantos lotes estão na GPU.
func (b *Backend) Batches() int {
	return len(b.models)
}

// Unload libera os lotes e o shader. O shader não pertence aos materiais.
func (b *Backend) Unload() {
	b.unloadModels()
	if b.shader.ID != 0 {
		rl.UnloadShader(b.shader)
		b.shader = rl.Shader{}
	}
	b.lastVert, b.lastInd = nil, nil
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	copy(unsafe.Slice((*byte)(ptr), size), unsafe.Slice((*byte)(data), size))
	return ptr
}

// freeMeshRAM libera a cópia em C depois do upload para a GPU.
func freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Indices != nil {
		C.free(unsafe.Pointer(mesh.Indices))
		mesh.Indices = nil
	}
}
