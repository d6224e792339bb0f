// Package audit records sm4tool operations in a local audit trail.
//
// Every encrypt, decrypt and keygen run appends one line to a JSON Lines
// file next to the user config:
//
//	~/.config/sm4tool/audit.jsonl
//
// Each entry carries a UUID, a UTC timestamp, the OS user and host, the
// operation, the files written and a fingerprint of the key. Key material
// is never written.
//
// # Usage
//
//	entry := audit.NewEntry("encrypt")
//	entry.Files = written
//	entry.KeyFingerprint = keys.Fingerprint(key)
//	audit.Log(entry)
//
// Logging is best-effort and can be turned off with [audit] enabled = false.
// ReadEntries skips malformed lines.
package audit
