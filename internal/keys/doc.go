// Package keys handles SM4 key material outside the cipher: hex encoding,
// random generation, key files, terminal prompts and fingerprints.
//
// Keys are exchanged as 32 hexadecimal characters. Input is accepted in any
// case; output is always uppercase:
//
//	key, err := keys.ParseHex("0123456789abcdeffedcba9876543210")
//	fmt.Println(keys.FormatHex(key)) // 0123456789ABCDEFFEDCBA9876543210
//
// Fingerprint identifies a key in logs without revealing it.
package keys
