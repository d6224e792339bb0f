// Package sm4 implements the SM4 block cipher (GB/T 32907-2016) and its
// Electronic Codebook mode with PKCS#7 padding.
//
// SM4 works on 16-byte blocks under a 16-byte key. A key is expanded once
// into a Schedule of 32 round keys; the same 32-round network encrypts
// with the schedule in derivation order and decrypts with it reversed.
// There is no separate decryption algorithm.
//
// # Usage
//
// Encrypt and decrypt whole in-memory buffers:
//
//	ct, err := sm4.Encrypt(plaintext, key)
//	pt, err := sm4.Decrypt(ct, key)
//
// Use a Codec to spread blocks across goroutines or to require every
// padding byte to match:
//
//	codec := sm4.NewCodec(sm4.WithWorkers(runtime.NumCPU()), sm4.WithStrictPadding())
//	pt, err := codec.Decrypt(ct, key)
//
// NewCipher exposes the raw block transform as a crypto/cipher.Block.
//
// # Errors
//
// Failures are sentinel values from internal/errors and should be checked
// with errors.Is:
//
//   - ErrInvalidKeyLength: key is not 16 bytes
//   - ErrInvalidCiphertextLength: ciphertext is empty or not whole blocks
//   - ErrInvalidPadding: decrypted pad length is 0 or above 16, which
//     means a wrong key or corrupted data
//
// ECB leaks equal plaintext blocks as equal ciphertext blocks and carries
// no integrity check.
package sm4
