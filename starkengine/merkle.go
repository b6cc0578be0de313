// Package starkengine implements the transparent STARK-style proving
// and verification machinery the burn/mint AIR is checked against:
// Merkle-committed trace rows, a Fiat-Shamir transcript, proof-of-work
// grinding, and randomized spot-checks of the transition constraints.
//
// This is deliberately a simplified engine rather than a full
// polynomial low-degree (FRI) test — no production-grade Go FRI engine
// exists in the reference material this was built from, and more than
// one reference verifier in that material is itself explicitly labeled
// a simplified-but-real STARK verifier for the same reason. Soundness
// here comes from randomized, Merkle-authenticated spot-checks of
// every transition constraint plus a proof-of-work cost on the
// transcript, not from a full degree bound on the trace polynomials.
package starkengine

import "github.com/zeebo/blake3"

func hashLeaf(data []byte) [32]byte {
	return blake3.Sum256(data)
}

func hashNode(left, right [32]byte) [32]byte {
	buf := make([]byte, 64)
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return blake3.Sum256(buf)
}

// MerkleTree is a binary Merkle tree over a fixed leaf set, padded to
// the next power of two by repeating the final leaf.
type MerkleTree struct {
	layers [][][32]byte
}

// NewMerkleTree commits to leaves.
func NewMerkleTree(leaves [][32]byte) *MerkleTree {
	n := len(leaves)
	size := 1
	for size < n {
		size <<= 1
	}
	padded := make([][32]byte, size)
	copy(padded, leaves)
	for i := n; i < size; i++ {
		padded[i] = leaves[n-1]
	}

	layers := [][][32]byte{padded}
	cur := padded
	for len(cur) > 1 {
		next := make([][32]byte, len(cur)/2)
		for i := range next {
			next[i] = hashNode(cur[2*i], cur[2*i+1])
		}
		layers = append(layers, next)
		cur = next
	}
	return &MerkleTree{layers: layers}
}

// Root returns the tree's root commitment.
func (t *MerkleTree) Root() [32]byte {
	return t.layers[len(t.layers)-1][0]
}

// Open returns the authentication path for the leaf at index.
func (t *MerkleTree) Open(index int) [][32]byte {
	path := make([][32]byte, 0, len(t.layers)-1)
	idx := index
	for l := 0; l < len(t.layers)-1; l++ {
		layer := t.layers[l]
		path = append(path, layer[idx^1])
		idx >>= 1
	}
	return path
}

// VerifyMerkleProof checks that leaf is the element at index under
// root, given its authentication path.
func VerifyMerkleProof(root [32]byte, leaf [32]byte, index int, path [][32]byte) bool {
	cur := leaf
	idx := index
	for _, sibling := range path {
		if idx&1 == 0 {
			cur = hashNode(cur, sibling)
		} else {
			cur = hashNode(sibling, cur)
		}
		idx >>= 1
	}
	return cur == root
}
