package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/sm4tool/internal/configs"
	"github.com/PolarWolf314/sm4tool/internal/sm4"
)

const testKeyHex = "0123456789ABCDEFFEDCBA9876543210"

// setupTestEnvironment points the user settings at a temp directory, disables
// color and resets command state. It returns a temp working directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalSettings := configs.UserSm4Settings
	configs.UserSm4Settings = configs.NewUserSettings(filepath.Join(t.TempDir(), "config"))
	t.Setenv("NO_COLOR", "1")
	ResetGlobalState()

	t.Cleanup(func() {
		configs.UserSm4Settings = originalSettings
		ResetGlobalState()
	})

	return t.TempDir()
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)
	drain := func(r io.Reader, out chan<- string) {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		out <- buf.String()
	}
	go drain(stdoutReader, stdoutChan)
	go drain(stderrReader, stderrChan)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// encryptRawBlock encrypts a single block without padding.
func encryptRawBlock(key, block []byte) ([]byte, error) {
	c, err := sm4.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(block))
	c.Encrypt(out, block)
	return out, nil
}
