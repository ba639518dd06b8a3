package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/candado/internal/configs"
	"github.com/PolarWolf314/candado/internal/secrets"

	"github.com/spf13/cobra"
)

const testPassword = "correct horse battery staple"

// setupTestEnvironment points the user settings at temporary directories and
// makes key derivation cheap. It returns a vault path inside the temp dir.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalSettings := configs.UserCandadoSettings
	originalParams := initParams
	t.Cleanup(func() {
		configs.UserCandadoSettings = originalSettings
		initParams = originalParams
	})

	tempUserDir := t.TempDir()
	configs.UserCandadoSettings = &configs.UserSettings{
		ConfigPath: filepath.Join(tempUserDir, "config"),
		DataPath:   filepath.Join(tempUserDir, "data"),
	}
	initParams = &secrets.KDFParams{Time: 1, Memory: 64, Threads: 1}

	t.Setenv(configs.EnvVault, "")
	t.Setenv(configs.EnvKeyfile, "")

	return filepath.Join(t.TempDir(), "vault.cndo")
}

// runCLI executes the command tree with args, feeding stdin to the command.
func runCLI(stdin string, args ...string) (string, error) {
	ResetGlobalState()
	ResetGenState()
	ResetConfigState()

	rootCmd := &cobra.Command{
		Use:           "candado",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(GetVaultCmd())
	rootCmd.AddCommand(GetGenCmd())
	rootCmd.AddCommand(GetConfigCmd())

	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	return captureOutput(rootCmd.Execute)
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	for _, r := range []io.Reader{stdoutReader, stderrReader} {
		go func(r io.Reader) {
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, r); err != nil {
				log.Fatalf("Failed to run copy command: %s", err)
			}
			outputChan <- buf.String()
		}(r)
	}

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	first := <-outputChan
	second := <-outputChan

	return first + second, err
}
