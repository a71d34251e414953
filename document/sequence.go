package document

import (
	"iter"
	"slices"

	"docgen/common"
)

// Sequence is the ordered list of blocks. Append order is rendering order.
type Sequence struct {
	blocks []Block
}

// Append adds block to the tail.
func (s *Sequence) Append(b Block) {
	s.blocks = append(s.blocks, b)
}

func (s *Sequence) Len() int {
	return len(s.blocks)
}

// Snapshot returns deep copy of the blocks in order. Neither the list nor the
// blocks in it are shared with the sequence.
func (s *Sequence) Snapshot() []Block {
	out := make([]Block, 0, len(s.blocks))
	for _, b := range s.blocks {
		out = append(out, b.clone())
	}
	return out
}

// all iterates stored blocks in order without copying, for package internal
// readers only.
func (s *Sequence) all() iter.Seq2[int, Block] {
	return slices.All(s.blocks)
}

// Kinds lists block kinds in order, handy for logging and tests.
func (s *Sequence) Kinds() []common.BlockKind {
	kinds := make([]common.BlockKind, 0, len(s.blocks))
	for _, b := range s.blocks {
		kinds = append(kinds, b.Kind())
	}
	return kinds
}
