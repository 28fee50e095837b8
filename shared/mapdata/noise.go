package mapdata

import (
	"github.com/aquilax/go-perlin"
)

// NoiseField é um campo de ruído coerente 2D.
// Deve ser determinístico para uma seed fixa; o domínio usado é [0,1]².
type NoiseField interface {
	Sample(u, v float64) float64
}

// NoiseFunc permite usar uma função simples como NoiseField.
type NoiseFunc func(u, v float64) float64

// Sample implementa NoiseField.
func (f NoiseFunc) Sample(u, v float64) float64 {
	return f(u, v)
}

const (
	perlinAlpha = 2.0 // Peso de cada oitava sucessiva (1/alpha)
	perlinBeta  = 2.0 // Multiplicador de frequência entre oitavas
)

// PerlinField amostra ruído Perlin com a frequência escalada pelo número de oitavas.
type PerlinField struct {
	noise     *perlin.Perlin
	frequency float64
}

// NewPerlinField cria um campo Perlin.
// octaves escala as coordenadas (u,v) antes da amostragem; layers é o número
// de somas fractais feitas pelo gerador.
func NewPerlinField(octaves float64, layers int32, seed int64) *PerlinField {
	if layers < 1 {
		layers = 1
	}
	if octaves <= 0 {
		octaves = 1
	}
	return &PerlinField{
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, layers, seed),
		frequency: octaves,
	}
}

// Sample retorna o valor do ruído em (u,v), aproximadamente em [-1,1].
func (f *PerlinField) Sample(u, v float64) float64 {
	return f.noise.Noise2D(u*f.frequency, v*f.frequency)
}
