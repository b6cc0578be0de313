package starkengine

import (
	"encoding/binary"

	"github.com/usexfg/burnmint-stark/field"
	"github.com/zeebo/blake3"
)

// Transcript implements a Fiat-Shamir transform via hash-chained
// state: every Absorb or Challenge call re-hashes the running state
// together with the new input, so the next challenge depends on
// everything absorbed so far. Blake3-256 is the fixed protocol hash
// function (identifier 4) per spec §4.4.
type Transcript struct {
	state [32]byte
}

// NewTranscript seeds a transcript from a domain label.
func NewTranscript(label string) *Transcript {
	return &Transcript{state: blake3.Sum256([]byte(label))}
}

// Absorb folds data into the transcript state.
func (t *Transcript) Absorb(data []byte) {
	buf := make([]byte, 0, len(t.state)+len(data))
	buf = append(buf, t.state[:]...)
	buf = append(buf, data...)
	t.state = blake3.Sum256(buf)
}

// challenge advances the state and returns the new digest.
func (t *Transcript) challenge() [32]byte {
	t.state = blake3.Sum256(t.state[:])
	return t.state
}

// ChallengeField squeezes a field element from the transcript.
func (t *Transcript) ChallengeField() field.Element {
	c := t.challenge()
	var b [8]byte
	copy(b[:], c[:8])
	return field.FromLEBytes(b)
}

// ChallengeUint64 squeezes a uint64 challenge reduced into [0, bound).
func (t *Transcript) ChallengeUint64(bound uint64) uint64 {
	c := t.challenge()
	v := binary.LittleEndian.Uint64(c[:8])
	return v % bound
}

// State exposes the raw transcript digest, used by the proof-of-work
// grinding step to measure leading zero bits without consuming a real
// challenge.
func (t *Transcript) State() [32]byte { return t.state }
