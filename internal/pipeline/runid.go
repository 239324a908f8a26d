package pipeline

import (
	"crypto/rand"
	"sync"
	"time"
)

// Run IDs are ULID-shaped: a 48-bit millisecond timestamp plus 80 random
// bits, Crockford Base32 encoded to 26 characters. Sortable by creation time
// and safe to generate concurrently.

var (
	runIDMu sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewRunID returns a fresh run-scoped identifier for log correlation.
func NewRunID() string {
	runIDMu.Lock()
	defer runIDMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	for i := 0; i < 6; i++ {
		b[i] = byte(ts >> (40 - 8*i))
	}
	rand.Read(b[6:])
	// Sequence in bytes 6-7 keeps IDs unique within the same millisecond.
	b[6] = byte(lastSeq >> 8)
	b[7] = byte(lastSeq)

	return encodeBase32(b)
}

// encodeBase32 encodes 128 bits as 26 Crockford Base32 characters, reading
// the input as a big-endian bit stream padded to 130 bits.
func encodeBase32(b [16]byte) string {
	var out [26]byte
	// 2 leading pad bits make 130 bits = 26 five-bit groups.
	bits := uint(2)
	var acc uint16
	pos := 0
	for i := 0; i < len(b); {
		for bits < 5 && i < len(b) {
			acc = acc<<8 | uint16(b[i])
			bits += 8
			i++
		}
		for bits >= 5 {
			bits -= 5
			out[pos] = crockford[(acc>>bits)&31]
			pos++
		}
	}
	return string(out[:])
}
