package mapdata

// Biome é uma região do mapa com regras próprias de geração.
type Biome struct {
	Name        string
	TreeDensity int // Árvores por 50 blocos²
	Mountains   bool
}

// Plains é o bioma padrão.
var Plains = Biome{Name: "plains", TreeDensity: 2}

// ColumnCoord identifica um bloco dentro de uma coluna de terreno.
type ColumnCoord struct {
	X, Y  int // Célula do mapa de alturas
	Level int // Índice vertical i da coluna
	Top   int // floor(altura), limite superior exclusivo de Level
}

// TerrainSelector escolhe o material de um bloco de terreno.
// A síntese de colunas não conhece nenhuma regra de material; tudo passa por aqui.
type TerrainSelector interface {
	Choose(biome *Biome, coord ColumnCoord) Attributes
}

// TerrainFunc permite usar uma função como TerrainSelector.
type TerrainFunc func(biome *Biome, coord ColumnCoord) Attributes

// Choose implementa TerrainSelector.
func (f TerrainFunc) Choose(biome *Biome, coord ColumnCoord) Attributes {
	return f(biome, coord)
}

// EmptyTerrain não atribui material algum.
type EmptyTerrain struct{}

// Choose implementa TerrainSelector.
func (EmptyTerrain) Choose(*Biome, ColumnCoord) Attributes {
	return Attributes{}
}

// StrataTerrain aplica camadas simples: grama no topo, SoilDepth blocos de
// terra abaixo e pedra no resto.
type StrataTerrain struct {
	SoilDepth int
}

// Choose implementa TerrainSelector.
func (s StrataTerrain) Choose(_ *Biome, coord ColumnCoord) Attributes {
	depth := coord.Top - 1 - coord.Level
	switch {
	case depth == 0:
		return Attributes{Type: BlockGrass}
	case depth <= s.SoilDepth:
		return Attributes{Type: BlockDirt}
	default:
		return Attributes{Type: BlockStone}
	}
}

// Nomes aceitos em TerrainByName.
const (
	TerrainEmpty  = "empty"
	TerrainStrata = "strata"
)

// TerrainByName resolve o nome usado na configuração.
// Nomes desconhecidos caem em EmptyTerrain.
func TerrainByName(name string) TerrainSelector {
	switch name {
	case TerrainStrata:
		return StrataTerrain{SoilDepth: 3}
	default:
		return EmptyTerrain{}
	}
}
