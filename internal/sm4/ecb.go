package sm4

import (
	"fmt"
	"sync"

	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"
)

// minBlocksPerWorker keeps goroutine overhead below the cost of the work.
const minBlocksPerWorker = 256

// Codec encrypts and decrypts whole buffers in ECB mode with PKCS#7 padding.
// The zero value is not usable; create one with NewCodec.
type Codec struct {
	workers       int
	strictPadding bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithWorkers spreads the blocks of large buffers over n goroutines.
// Values below 1 mean a single goroutine.
func WithWorkers(n int) Option {
	return func(c *Codec) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithStrictPadding makes Decrypt check every padding byte, not only the last.
func WithStrictPadding() Option {
	return func(c *Codec) {
		c.strictPadding = true
	}
}

// NewCodec returns a Codec with the given options applied.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// Encrypt pads plaintext and encrypts it under key with a single goroutine.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	return defaultCodec.Encrypt(plaintext, key)
}

// Decrypt decrypts ciphertext under key and removes the padding, checking
// only the final pad-length byte.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	return defaultCodec.Decrypt(ciphertext, key)
}

// Encrypt pads plaintext to a whole number of blocks and encrypts each block
// independently. The result is always 1 to 16 bytes longer than plaintext.
func (c *Codec) Encrypt(plaintext, key []byte) ([]byte, error) {
	rk, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}

	out := pad(plaintext)
	c.crypt(out, &rk)
	return out, nil
}

// Decrypt reverses Encrypt. Nothing is returned on failure.
func (c *Codec) Decrypt(ciphertext, key []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a positive multiple of %d",
			kerrors.ErrInvalidCiphertextLength, len(ciphertext), BlockSize)
	}

	rk, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	dec := rk.Reverse()

	out := make([]byte, len(ciphertext))
	copy(out, ciphertext)
	c.crypt(out, &dec)

	return unpad(out, c.strictPadding)
}

// crypt transforms buf in place, one block at a time.
func (c *Codec) crypt(buf []byte, rk *Schedule) {
	blocks := len(buf) / BlockSize
	workers := c.workers
	if most := blocks / minBlocksPerWorker; workers > most {
		workers = most
	}
	if workers <= 1 {
		cryptBlocks(buf, rk)
		return
	}

	// Contiguous block ranges, so each worker owns a disjoint slice of buf.
	per := (blocks + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < blocks; start += per {
		end := min(start+per, blocks)
		wg.Add(1)
		go func(part []byte) {
			defer wg.Done()
			cryptBlocks(part, rk)
		}(buf[start*BlockSize : end*BlockSize])
	}
	wg.Wait()
}

func cryptBlocks(buf []byte, rk *Schedule) {
	for len(buf) > 0 {
		ProcessBlock(buf, buf, rk)
		buf = buf[BlockSize:]
	}
}

// pad returns a copy of data followed by PKCS#7 padding. A full extra block
// is added when data is already block aligned.
func pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// unpad strips PKCS#7 padding. Unless strict is set only the last byte is
// inspected.
func unpad(data []byte, strict bool) ([]byte, error) {
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > BlockSize {
		return nil, fmt.Errorf("%w: pad length %d", kerrors.ErrInvalidPadding, padLen)
	}
	if strict {
		for _, b := range data[len(data)-padLen:] {
			if int(b) != padLen {
				return nil, fmt.Errorf("%w: inconsistent padding bytes", kerrors.ErrInvalidPadding)
			}
		}
	}
	return data[:len(data)-padLen], nil
}
