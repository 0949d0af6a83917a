package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vccd/internal/services"
	"vccd/internal/testsupport"
)

func TestCompileCommandWritesOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	src := filepath.Join(env.sourceDir, "closecaption_english.txt")
	testsupport.WriteUTF16Source(t, src, "english", "Hello", "Hi", "abc", "Letters")

	out, _, err := runCLI(t, []string{"compile", src}, env.configPath)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	target := filepath.Join(env.cfg.Paths.OutputDir, "closecaption_english.dat")
	requireContains(t, out, "Compiled "+src+" -> "+target)
	requireContains(t, out, "2 captions, 1 blocks, 8704 bytes")

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() != 8704 {
		t.Fatalf("unexpected output size %d", info.Size())
	}

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "closecaption_english.txt")
	requireContains(t, out, target)
}

func TestCompileCommandSkipsUnchanged(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSkipUnchanged(true))
	src := filepath.Join(env.sourceDir, "closecaption_french.txt")
	testsupport.WriteSource(t, src, "french", "a", "b")

	if _, _, err := runCLI(t, []string{"compile", src}, env.configPath); err != nil {
		t.Fatalf("first compile: %v", err)
	}
	out, _, err := runCLI(t, []string{"compile", src}, env.configPath)
	if err != nil {
		t.Fatalf("second compile: %v", err)
	}
	requireContains(t, out, "Skipped "+src)

	out, _, err = runCLI(t, []string{"compile", "--force", src}, env.configPath)
	if err != nil {
		t.Fatalf("forced compile: %v", err)
	}
	requireContains(t, out, "Compiled "+src)
}

func TestCompileCommandReportsEveryFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	good := filepath.Join(env.sourceDir, "closecaption_english.txt")
	testsupport.WriteSource(t, good, "english", "a", "b")
	missing := filepath.Join(env.sourceDir, "missing.txt")
	oversized := filepath.Join(env.sourceDir, "closecaption_german.txt")
	testsupport.WriteSource(t, oversized, "german", "big", strings.Repeat("x", 5000))

	outDir := t.TempDir()
	out, _, err := runCLI(t, []string{"compile", "-o", outDir, missing, good, oversized}, env.configPath)
	if err == nil {
		t.Fatal("expected compile errors")
	}
	requireContains(t, out, "Compiled "+good)
	requireContains(t, err.Error(), missing)
	requireContains(t, err.Error(), oversized)
	if !errors.Is(err, services.ErrNotFound) || !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected both markers to be retained, got %v", err)
	}
	if code := services.ExitCode(err); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(outDir, "closecaption_english.dat")); err != nil {
		t.Fatalf("expected good source to be written: %v", err)
	}
}

func TestCompileCommandRejectsFileOutputForManySources(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"compile", "-o", filepath.Join(t.TempDir(), "one.dat"), "a.txt", "b.txt"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for file output with multiple sources")
	}
	requireContains(t, err.Error(), "--output must be a directory")
}

func TestTokensCommandPrintsSortedDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	src := filepath.Join(env.sourceDir, "closecaption_english.txt")
	testsupport.WriteSource(t, src, "english", "Hello", "Hi", "abc", "Letters")

	out, _, err := runCLI(t, []string{"tokens", src}, env.configPath)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %q", out)
	}
	if lines[0] != "abc\t352441c2\t0\t0\t16" {
		t.Fatalf("unexpected first row %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Hello\t") || !strings.HasSuffix(lines[1], "\t0\t16\t6") {
		t.Fatalf("unexpected second row %q", lines[1])
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Paths.OutputDir, "closecaption_english.dat")); !os.IsNotExist(err) {
		t.Fatalf("tokens must not write output, stat err=%v", err)
	}
}

func TestHistoryClear(t *testing.T) {
	env := setupCLITestEnv(t)
	src := filepath.Join(env.sourceDir, "closecaption_english.txt")
	testsupport.WriteSource(t, src, "english", "a", "b")

	if _, _, err := runCLI(t, []string{"compile", src}, env.configPath); err != nil {
		t.Fatalf("compile: %v", err)
	}
	out, _, err := runCLI(t, []string{"history", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 builds")

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No builds recorded")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "[ok] History database")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"--log-level", "loud", "history"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for invalid --log-level")
	}
	requireContains(t, err.Error(), "--log-level")
}

func TestTableRendering(t *testing.T) {
	out := renderTable([]string{"Token", "Length"}, [][]string{{"abc", "16"}}, []columnAlignment{alignLeft, alignRight})
	requireContains(t, out, "Token")
	requireContains(t, out, "abc")
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty table for no headers")
	}
	if got := renderTSV([][]string{{"a", "b"}, {"c", "d"}}); got != "a\tb\nc\td\n" {
		t.Fatalf("unexpected tsv %q", got)
	}
}
