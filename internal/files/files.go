package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/sm4tool/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

// DecryptedFallbackSuffix is appended when a decrypted file's name does not
// end with the encrypted suffix.
const DecryptedFallbackSuffix = ".dec"

// Resolve takes user-provided paths, directories and globs and returns the
// matching regular files, deduplicated, in argument order. Relative
// patterns are resolved against baseDir.
func Resolve(patterns []string, baseDir, suffix string, forEncryption bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, baseDir, suffix, forEncryption)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern, baseDir, suffix string, forEncryption bool) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return findFilesInDir(absPattern, suffix, forEncryption)
	}

	if strings.ContainsAny(pattern, "*?[{") {
		return expandGlob(absPattern, pattern, suffix, forEncryption)
	}

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, pattern)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", pattern, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern, pattern, suffix string, forEncryption bool) ([]string, error) {
	if !doublestar.ValidatePathPattern(absPattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if wanted(m, suffix, forEncryption) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func findFilesInDir(dir, suffix string, forEncryption bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if wanted(path, suffix, forEncryption) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

func wanted(path, suffix string, forEncryption bool) bool {
	return strings.HasSuffix(path, suffix) != forEncryption
}

// EncryptedPath returns the output path for encrypting path.
func EncryptedPath(path, suffix string) string {
	return path + suffix
}

// DecryptedPath returns the output path for decrypting path: the suffix is
// stripped, or DecryptedFallbackSuffix appended when it is absent.
func DecryptedPath(path, suffix string) string {
	base := filepath.Base(path)
	if strings.HasSuffix(base, suffix) && len(base) > len(suffix) {
		return strings.TrimSuffix(path, suffix)
	}
	return path + DecryptedFallbackSuffix
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// WriteOutput writes data to path with the given permissions. An existing
// file is left untouched unless force is set.
func WriteOutput(path string, data []byte, perm os.FileMode, force bool) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", kerrors.ErrOutputExists, path)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}
	return f.Close()
}
