//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	AccessKey  string
	APIURL     string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		AccessKey:  os.Getenv("MARKETSTACK_ACCESS_KEY"),
		APIURL:     os.Getenv("MARKETSTACK_API"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("MARKETSTACK_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the marketstack binary.
func getBinaryPath() string {
	if path := os.Getenv("MARKETSTACK_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../marketstack",
		"./marketstack",
		"../marketstack",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "marketstack"
}

// SkipIfMissingKey skips the test when no access key is configured.
func (config *TestConfig) SkipIfMissingKey(t *testing.T) {
	t.Helper()

	if config.AccessKey == "" {
		t.Skip("MARKETSTACK_ACCESS_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI has not been built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingKey(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("marketstack binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs marketstack CLI commands.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a CLI command with an isolated config file.
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	args = append([]string{"--config", runner.t.TempDir() + "/config.yml"}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...) // #nosec G204

	cmd.Env = append(os.Environ(), "MARKETSTACK_ACCESS_KEY="+runner.config.AccessKey)
	if runner.config.APIURL != "" {
		cmd.Env = append(cmd.Env, "MARKETSTACK_API="+runner.config.APIURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err := cmd.Run()
	stdout := stdoutBuf.String()
	stderr := stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}
