package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain lets the test binary stand in for the edtfloc binary.
func TestMain(m *testing.M) {
	if os.Getenv("EDTFLOC_RUN_MAIN") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

type result struct {
	stdout string
	stderr string
	code   int
}

// runCLI runs edtfloc in a subprocess with an isolated HOME.
func runCLI(t *testing.T, home string, env []string, stdin string, args ...string) result {
	t.Helper()

	var cleanEnv []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "EDTFLOC_") ||
			strings.HasPrefix(e, "LANG") || strings.HasPrefix(e, "LC_") {
			continue
		}
		cleanEnv = append(cleanEnv, e)
	}
	cleanEnv = append(cleanEnv, "EDTFLOC_RUN_MAIN=1", "HOME="+home, "LANG=en_US.UTF-8")
	cleanEnv = append(cleanEnv, env...)

	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = cleanEnv
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("failed to run edtfloc: %v", err)
	}
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestEndToEnd(t *testing.T) {
	tests := []struct {
		name       string
		env        []string
		stdin      string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "format command",
			args:       []string{"format", "-f", "long", "2004-06-05"},
			wantStdout: "June 5, 2004\n",
		},
		{
			name:       "format is the default command",
			args:       []string{"-l", "fr_FR", "-f", "long", "2004-06-05"},
			wantStdout: "5 juin 2004\n",
		},
		{
			name:       "locale from environment variable",
			env:        []string{"EDTFLOC_LOCALE=de_DE", "EDTFLOC_FORMAT=long"},
			args:       []string{"format", "2004-06-05"},
			wantStdout: "5. Juni 2004\n",
		},
		{
			name:       "locale from LANG",
			env:        []string{"LANG=en_GB.UTF-8"},
			args:       []string{"format", "-f", "short", "2004-06-05"},
			wantStdout: "05/06/2004\n",
		},
		{
			name:       "interval",
			args:       []string{"format", "2004-06/2004-08"},
			wantStdout: "Jun – Aug 2004\n",
		},
		{
			name:       "ambiguous input exits 2",
			args:       []string{"format", "05/06/2004"},
			wantCode:   2,
			wantStderr: "use YYYY-MM-DD",
		},
		{
			name:       "unknown locale exits 1 with hint",
			args:       []string{"format", "-l", "tlh", "2004"},
			wantCode:   1,
			wantStderr: "edtfloc locales",
		},
		{
			name:       "bad format pattern",
			args:       []string{"format", "-f", "QQQ", "2004"},
			wantCode:   1,
			wantStderr: "Error:",
		},
		{
			name:       "validate from stdin",
			stdin:      "2004\n2005-02-29\n",
			args:       []string{"validate", "--stdin"},
			wantCode:   2,
			wantStdout: "1 of 2 input(s) valid.",
		},
		{
			name:       "skeleton",
			args:       []string{"skeleton", "-f", "full", "day"},
			wantStdout: "EEEEyMMMMd\n",
		},
		{
			name:       "parse json",
			args:       []string{"parse", "--json", "2004-06"},
			wantStdout: `"precision": "month"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, t.TempDir(), tt.env, tt.stdin, tt.args...)
			if res.code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d\nstdout: %s\nstderr: %s", res.code, tt.wantCode, res.stdout, res.stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(res.stdout, tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", res.stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(res.stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", res.stderr, tt.wantStderr)
			}
		})
	}
}

func TestEndToEndConfigWorkflow(t *testing.T) {
	home := t.TempDir()
	configPath := filepath.Join(home, ".config", "edtfloc", "config.toml")

	res := runCLI(t, home, nil, "", "config", "path")
	if strings.TrimSpace(res.stdout) != configPath {
		t.Fatalf("config path = %q, want %q", res.stdout, configPath)
	}

	res = runCLI(t, home, nil, "", "-l", "it_IT", "-f", "long", "config", "init")
	if res.code != 0 {
		t.Fatalf("config init failed: %s", res.stderr)
	}

	// The saved locale and format now apply without flags.
	res = runCLI(t, home, nil, "", "2004-06-05")
	if res.stdout != "5 giugno 2004\n" {
		t.Errorf("formatted with saved config = %q, want %q", res.stdout, "5 giugno 2004\n")
	}

	// Flags still win over the file.
	res = runCLI(t, home, nil, "", "-l", "en_US", "2004-06-05")
	if res.stdout != "June 5, 2004\n" {
		t.Errorf("flag override = %q", res.stdout)
	}

	res = runCLI(t, home, nil, "", "config", "init")
	if res.code == 0 {
		t.Error("second config init without --force succeeded")
	}

	res = runCLI(t, home, nil, "", "-f", "short", "config", "init", "--force")
	if res.code != 0 {
		t.Fatalf("config init --force failed: %s", res.stderr)
	}
	res = runCLI(t, home, nil, "", "config", "backups")
	if !strings.Contains(res.stdout, "config-") {
		t.Errorf("config backups = %q", res.stdout)
	}

	res = runCLI(t, home, nil, "", "config", "restore")
	if res.code != 0 {
		t.Fatalf("config restore failed: %s", res.stderr)
	}
	res = runCLI(t, home, nil, "", "2004-06-05")
	if res.stdout != "5 giugno 2004\n" {
		t.Errorf("after restore = %q", res.stdout)
	}

	if _, err := os.Stat(filepath.Join(home, ".config", "edtfloc", "logs")); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestEndToEndBrokenConfig(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "edtfloc")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("locale = \"tlh\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := runCLI(t, home, nil, "", "2004")
	if res.code != 1 {
		t.Errorf("exit code with broken config = %d, want 1", res.code)
	}

	res = runCLI(t, home, nil, "", "doctor")
	if res.code != 1 || !strings.Contains(res.stdout, "❌ Config file: FAIL") {
		t.Errorf("doctor with broken config: code %d\nstdout: %s", res.code, res.stdout)
	}

	// config commands still run so the file can be replaced.
	res = runCLI(t, home, nil, "", "config", "init", "--force")
	if res.code != 0 {
		t.Fatalf("config init --force with broken config failed: %s", res.stderr)
	}
	res = runCLI(t, home, nil, "", "-f", "long", "2004-06-05")
	if res.stdout != "June 5, 2004\n" {
		t.Errorf("after repair = %q", res.stdout)
	}

	res = runCLI(t, home, nil, "", "doctor")
	if res.code != 0 || !strings.Contains(res.stdout, "All diagnostics passed!") {
		t.Errorf("doctor after repair: code %d\nstdout: %s", res.code, res.stdout)
	}
}

func TestEndToEndYAMLConfig(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "edtfloc.yaml")
	if err := os.WriteFile(path, []byte("locale: es_ES\nformat: long\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := runCLI(t, home, []string{fmt.Sprintf("EDTFLOC_CONFIG=%s", path)}, "", "2004-06-05")
	if res.stdout != "5 de junio de 2004\n" {
		t.Errorf("yaml config output = %q, stderr = %q", res.stdout, res.stderr)
	}
}
