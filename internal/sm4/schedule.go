package sm4

import (
	"encoding/binary"
	"fmt"

	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
)

const (
	// KeySize is the SM4 key length in bytes.
	KeySize = 16

	// Rounds is the number of rounds and round keys.
	Rounds = 32
)

// Schedule is the ordered sequence of round keys derived from one key.
// It is a value type; copies never alias.
type Schedule [Rounds]uint32

// ExpandKey derives the encryption schedule for key.
func ExpandKey(key []byte) (Schedule, error) {
	var rk Schedule
	if len(key) != KeySize {
		return rk, fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidKeyLength, KeySize, len(key))
	}

	var k [4]uint32
	for i := range k {
		k[i] = binary.BigEndian.Uint32(key[4*i:]) ^ fk[i]
	}

	// k holds the last four words; rk[i] is k[i+4] in the standard's notation.
	for i := 0; i < Rounds; i++ {
		next := k[0] ^ keyT(k[1]^k[2]^k[3]^ck[i])
		rk[i] = next
		k[0], k[1], k[2], k[3] = k[1], k[2], k[3], next
	}
	return rk, nil
}

// Reverse returns the schedule in reverse order, which is the decryption
// schedule for the same key.
func (s Schedule) Reverse() Schedule {
	var r Schedule
	for i := range s {
		r[i] = s[Rounds-1-i]
	}
	return r
}
