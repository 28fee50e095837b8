package mapdata

import "fmt"

// GridCoord é uma célula inteira do mapa de alturas.
type GridCoord struct {
	X, Y int
}

// String retorna a representação da coordenada.
func (c GridCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// HeightSample é uma entrada do mapa de alturas.
type HeightSample struct {
	X, Y   int
	Height float64
}

// HeightMap mapeia (x,y) em [1..Width]×[1..Depth] para a altura amostrada.
// A ordem de inserção (x primeiro, depois y) é preservada e define a ordem
// dos blocos gerados.
type HeightMap struct {
	Width, Depth int

	samples []HeightSample
	index   map[GridCoord]int
}

// BuildHeightMap amostra o campo em (x/width, y/depth) e multiplica por scaler.
func BuildHeightMap(field NoiseField, width, depth int, scaler float64) *HeightMap {
	h := &HeightMap{
		Width:   width,
		Depth:   depth,
		samples: make([]HeightSample, 0, max(width, 0)*max(depth, 0)),
		index:   make(map[GridCoord]int),
	}

	for x := 1; x <= width; x++ {
		for y := 1; y <= depth; y++ {
			height := field.Sample(float64(x)/float64(width), float64(y)/float64(depth)) * scaler
			h.index[GridCoord{X: x, Y: y}] = len(h.samples)
			h.samples = append(h.samples, HeightSample{X: x, Y: y, Height: height})
		}
	}
	return h
}

// Len retorna o número de entradas.
func (h *HeightMap) Len() int {
	return len(h.samples)
}

// Lookup retorna a amostra de (x,y), se existir.
func (h *HeightMap) Lookup(x, y int) (HeightSample, bool) {
	i, ok := h.index[GridCoord{X: x, Y: y}]
	if !ok {
		return HeightSample{}, false
	}
	return h.samples[i], true
}

// Samples retorna as entradas na ordem de inserção. Não modifique o slice.
func (h *HeightMap) Samples() []HeightSample {
	return h.samples
}
