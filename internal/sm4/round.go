package sm4

import "math/bits"

// tau substitutes each byte of x through the S-box.
func tau(x uint32) uint32 {
	return uint32(substitute(byte(x>>24)))<<24 |
		uint32(substitute(byte(x>>16)))<<16 |
		uint32(substitute(byte(x>>8)))<<8 |
		uint32(substitute(byte(x)))
}

// linear is L, the diffusion step of the data path.
func linear(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 2) ^ bits.RotateLeft32(x, 10) ^
		bits.RotateLeft32(x, 18) ^ bits.RotateLeft32(x, 24)
}

// linearKey is L', the diffusion step of key expansion. It must not be
// used on the data path.
func linearKey(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 13) ^ bits.RotateLeft32(x, 23)
}

// roundT is the composite transform T applied once per round.
func roundT(x uint32) uint32 {
	return linear(tau(x))
}

// keyT is the composite transform T' used while expanding a key.
func keyT(x uint32) uint32 {
	return linearKey(tau(x))
}
