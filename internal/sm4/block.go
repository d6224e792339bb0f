package sm4

import (
	"crypto/cipher"
	"encoding/binary"
)

// BlockSize is the SM4 block length in bytes.
const BlockSize = 16

// ProcessBlock runs the 32-round network over the first BlockSize bytes of
// src and writes the result to dst. Passing the forward schedule encrypts;
// passing its Reverse decrypts. dst and src may be the same slice.
func ProcessBlock(dst, src []byte, rk *Schedule) {
	if len(src) < BlockSize {
		panic("sm4: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sm4: output not full block")
	}

	x0 := binary.BigEndian.Uint32(src[0:4])
	x1 := binary.BigEndian.Uint32(src[4:8])
	x2 := binary.BigEndian.Uint32(src[8:12])
	x3 := binary.BigEndian.Uint32(src[12:16])

	for r := 0; r < Rounds; r++ {
		x0, x1, x2, x3 = x1, x2, x3, x0^roundT(x1^x2^x3^rk[r])
	}

	binary.BigEndian.PutUint32(dst[0:4], x3)
	binary.BigEndian.PutUint32(dst[4:8], x2)
	binary.BigEndian.PutUint32(dst[8:12], x1)
	binary.BigEndian.PutUint32(dst[12:16], x0)
}

type blockCipher struct {
	enc Schedule
	dec Schedule
}

// NewCipher returns key's SM4 transform as a cipher.Block.
func NewCipher(key []byte) (cipher.Block, error) {
	enc, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &blockCipher{enc: enc, dec: enc.Reverse()}, nil
}

func (c *blockCipher) BlockSize() int { return BlockSize }

func (c *blockCipher) Encrypt(dst, src []byte) { ProcessBlock(dst, src, &c.enc) }

func (c *blockCipher) Decrypt(dst, src []byte) { ProcessBlock(dst, src, &c.dec) }
