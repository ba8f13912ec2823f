package noun

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Fingerprint hashes a canonical serialization of the tree with SHA3-256.
// Used to identify boundary values in logs without rendering whole trees.
func Fingerprint(n Noun) [32]byte {
	h := sha3.New256()
	writeNoun(h, n)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func writeNoun(h interface{ Write([]byte) (int, error) }, n Noun) {
	switch v := n.(type) {
	case Atom:
		b := v.Big().Bytes()
		var hdr [9]byte
		hdr[0] = 0x00
		binary.BigEndian.PutUint64(hdr[1:], uint64(len(b)))
		h.Write(hdr[:])
		h.Write(b)
	case Cell:
		h.Write([]byte{0x01})
		writeNoun(h, v.Head)
		writeNoun(h, v.Tail)
	}
}
