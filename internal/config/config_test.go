package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "main.come"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CCCommand() != "cc" {
		t.Errorf("CCCommand() = %q, want \"cc\"", cfg.CCCommand())
	}
	if !cfg.WantsLineDirectives() {
		t.Error("WantsLineDirectives() should default to true")
	}
}

func TestLoad_ParsesSiblingFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "come.yaml")
	content := "cc: clang\nruntime_include: ./rt\nline_directives: false\n"
	if err := os.WriteFile(yamlPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(filepath.Join(dir, "main.come"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CC != "clang" {
		t.Errorf("CC = %q, want clang", cfg.CC)
	}
	if cfg.RuntimeInclude != "./rt" {
		t.Errorf("RuntimeInclude = %q", cfg.RuntimeInclude)
	}
	if cfg.WantsLineDirectives() {
		t.Error("WantsLineDirectives() should be false per come.yaml")
	}
}

func TestCCCommand_EnvOverridesConfig(t *testing.T) {
	t.Setenv("CC", "zig-cc")
	cfg := &Config{CC: "clang"}
	if got := cfg.CCCommand(); got != "zig-cc" {
		t.Errorf("CCCommand() = %q, want zig-cc (env override)", got)
	}
}
