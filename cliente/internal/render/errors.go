package render

import (
	"errors"
	"fmt"
)

var (
	// ErrShaderFailure indica falha de compilação ou link. É fatal.
	ErrShaderFailure = errors.New("falha no shader")

	// ErrResourceExhausted indica que a GPU não conseguiu alocar um buffer. É fatal.
	ErrResourceExhausted = errors.New("recursos da GPU esgotados")
)

// BufferTarget identifica o buffer de GPU envolvido numa operação.
type BufferTarget int

const (
	VertexBuffer BufferTarget = iota
	IndexBuffer
)

// String retorna o nome do alvo.
func (t BufferTarget) String() string {
	switch t {
	case VertexBuffer:
		return "vertex"
	case IndexBuffer:
		return "index"
	default:
		return fmt.Sprintf("BufferTarget(%d)", int(t))
	}
}

// ShaderError carrega o log de diagnóstico do driver.
type ShaderError struct {
	Stage string // "vertex", "fragment" ou "link"
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%v (%s): %s", ErrShaderFailure, e.Stage, e.Log)
}

func (e *ShaderError) Unwrap() error {
	return ErrShaderFailure
}

// BufferAllocError informa o tamanho pedido que não pôde ser alocado.
type BufferAllocError struct {
	Target BufferTarget
	Bytes  int
}

func (e *BufferAllocError) Error() string {
	return fmt.Sprintf("%v: buffer %s de %d bytes", ErrResourceExhausted, e.Target, e.Bytes)
}

func (e *BufferAllocError) Unwrap() error {
	return ErrResourceExhausted
}
