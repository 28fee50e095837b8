package mapdata

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultBlockLength é o lado padrão de um bloco no espaço do mundo.
const DefaultBlockLength float32 = 1.0

// BlockType identifica o material de um bloco.
type BlockType uint8

const (
	BlockUnset BlockType = iota // Sem material definido (terreno padrão)
	BlockGrass
	BlockDirt
	BlockStone
	BlockOakWood
	BlockOakLeaf
)

var blockTypeNames = map[BlockType]string{
	BlockUnset:   "",
	BlockGrass:   "grass_block",
	BlockDirt:    "dirt",
	BlockStone:   "stone",
	BlockOakWood: "oak_wood",
	BlockOakLeaf: "oak_leaf",
}

// String retorna o nome do material, ex: "oak_wood".
func (t BlockType) String() string {
	if name, ok := blockTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BlockType(%d)", uint8(t))
}

// ParseBlockType converte o nome de um material para o enum.
// Nomes desconhecidos são rejeitados na fronteira.
func ParseBlockType(name string) (BlockType, error) {
	for t, n := range blockTypeNames {
		if n == name {
			return t, nil
		}
	}
	return BlockUnset, fmt.Errorf("tipo de bloco desconhecido: %q", name)
}

// Attributes é o resultado da escolha de material para um bloco.
type Attributes struct {
	Type  BlockType
	Extra map[string]string // Opcional, propriedades livres
}

// Block é um cubo de lado BlockLength ancorado no canto "topo-esquerda-perto":
// X e Z mínimos, Y máximo. O cubo ocupa Position até Position + (l, -l, l).
type Block struct {
	Position mgl32.Vec3
	Type     BlockType
	Extra    map[string]string
}

// NewBlock cria um bloco a partir da posição e dos atributos escolhidos.
func NewBlock(pos mgl32.Vec3, attrs Attributes) Block {
	return Block{Position: pos, Type: attrs.Type, Extra: attrs.Extra}
}

// String retorna a representação do bloco para logs.
func (b Block) String() string {
	return fmt.Sprintf("%s@(%.2f, %.2f, %.2f)", b.Type, b.Position.X(), b.Position.Y(), b.Position.Z())
}
