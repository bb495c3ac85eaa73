package cfg

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// StructuralHash fingerprints the graph's node set, block content, edge set,
// and size hints. Two graphs built from sources that enumerate the same keys,
// descriptions, successors, and sizes in the same order hash identically; any
// change that can alter the drawing produces a different hash. Block content
// is included because unhinted nodes are measured from it, so edited text
// must invalidate a cached layout even when the shape is unchanged. The panel
// uses this to decide when a cached layout is stale.
func (g *Graph) StructuralHash() string {
	h := sha256.New()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	writeString := func(s string) {
		writeInt(len(s))
		h.Write([]byte(s))
	}

	writeInt(len(g.nodes))
	for _, n := range g.nodes {
		writeString(n.Key)
		writeString(n.Block.Title)
		writeInt(len(n.Block.Body))
		for _, line := range n.Block.Body {
			writeString(line)
		}
		var flags byte
		if n.Block.Entry {
			flags |= 1
		}
		if n.Block.Exit {
			flags |= 2
		}
		h.Write([]byte{flags})
		writeFloat(n.Width)
		writeFloat(n.Height)
	}
	writeInt(len(g.edges))
	for _, e := range g.edges {
		writeInt(int(e.From))
		writeInt(int(e.To))
	}

	return hex.EncodeToString(h.Sum(nil))
}
