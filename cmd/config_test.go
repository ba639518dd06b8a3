package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/PolarWolf314/candado/internal/configs"
)

func TestConfigInitAndShow(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI("", "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(output, "defaults") {
		t.Errorf("Expected defaults source, got: %s", output)
	}

	output, err = runCLI("", "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v\nOutput: %s", err, output)
	}

	path := configs.UserCandadoSettings.ConfigFile()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected config mode 0600, got %o", perm)
	}

	if _, err := runCLI("", "config", "init"); err == nil {
		t.Error("Expected config init to refuse an existing file")
	}
	if _, err := runCLI("", "config", "init", "--force"); err != nil {
		t.Errorf("config init --force failed: %v", err)
	}

	t.Setenv(configs.EnvVault, "/tmp/from-env.cndo")
	output, err = runCLI("", "config", "show", "--json")
	if err != nil {
		t.Fatalf("config show --json failed: %v", err)
	}
	if !strings.Contains(output, `"vault_path": "/tmp/from-env.cndo"`) {
		t.Errorf("Expected environment override, got: %s", output)
	}
}
