package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sjiamnocna/fancysokoban/internal/config"
)

func TestResolveMazeFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(wd)

	if err := os.Mkdir(mazeDir, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(mazeDir, "maze1.txt"), []byte("WWWW\nWP1G\nWWWW\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile("local.txt", []byte("WWWW\nWP1G\nWWWW\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"maze1.txt", filepath.Join(mazeDir, "maze1.txt")},
		{"local.txt", "local.txt"},
		{"missing.txt", "missing.txt"},
		{filepath.Join("other", "maze1.txt"), filepath.Join("other", "maze1.txt")},
	}
	for _, tt := range tests {
		if got := resolveMazeFile(tt.in); got != tt.want {
			t.Errorf("resolveMazeFile(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLockedBufferFlush(t *testing.T) {
	var b lockedBuffer
	b.Write([]byte("held line\n"))

	out, err := os.CreateTemp(t.TempDir(), "log_*.txt")
	if err != nil {
		t.Fatalf("CreateTemp failed: %v", err)
	}
	defer out.Close()
	b.flushTo(out)

	data, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "held line\n" {
		t.Errorf("Flushed %q", data)
	}
}

func TestRootCommandLeavesErrorsToCaller(t *testing.T) {
	broken := errors.New("maze is broken")
	var got config.Config
	root := newRootCommand(func(cfg config.Config) error {
		got = cfg
		return broken
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "none.toml"),
		"--frontend", "TUI",
		"--log-level", "debug",
		"custom.txt",
	})

	if err := root.Execute(); !errors.Is(err, broken) {
		t.Fatalf("Execute error = %v, want %v", err, broken)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no usage or error output, got %q", out.String())
	}
	if got.MazeFile != "custom.txt" || got.Frontend != config.FrontendTUI || got.LogLevel != "debug" {
		t.Errorf("Unexpected config passed to the game: %+v", got)
	}
}
