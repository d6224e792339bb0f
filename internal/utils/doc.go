// Package utils provides small helpers shared by the sm4tool packages.
//
// # System
//   - GetUsername, GetHostname: identity recorded in the audit log
//
// # Formatting
//   - FormatPaths: indented path lists for command output
//   - FormatBytes: human-readable sizes
//
// # I/O and Terminal
//   - ReadStdin: reads piped input, e.g. `--key-file -`
//   - ReadPassphrase: reads a key from the terminal without echo
package utils
