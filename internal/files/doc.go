// Package files resolves command-line file arguments and writes cipher
// output next to the source files.
//
// Arguments may be literal paths, directories (walked recursively) or glob
// patterns with ** support:
//
//	sm4tool encrypt notes.txt reports/ 'photos/**/*.jpg'
//
// When encrypting, files already carrying the encrypted suffix are skipped
// in directories and globs. When decrypting, only files carrying it are
// picked up there. A literal path is always taken as given.
package files
