package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/snowscape/audio"
	"github.com/lixenwraith/snowscape/config"
	"github.com/lixenwraith/snowscape/logger"
)

func TestRunOnceDumpsFrame(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-once", "-frames", "3", "-width", "30", "-height", "8", "-seed", "5"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("Expected 8 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if len([]rune(l)) != 30 {
			t.Errorf("Line %d has %d cells", i, len([]rune(l)))
		}
	}
}

func TestRunDumpDeterministic(t *testing.T) {
	args := []string{"-once", "-frames", "10", "-seed", "77"}
	var a, b bytes.Buffer
	if err := run(args, &a); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(args, &b); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.String() != b.String() {
		t.Error("Same seed produced different dumps")
	}
}

func TestRunNonTerminalIsHeadless(t *testing.T) {
	// A bytes.Buffer is never a terminal, so no -once is needed
	var out bytes.Buffer
	if err := run([]string{"-frames", "0", "-seed", "1"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Count(out.String(), "\n") != 24 {
		t.Errorf("Expected default 24 rows, got %d", strings.Count(out.String(), "\n"))
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-density", "2"}, &out)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
	if out.Len() != 0 {
		t.Error("Nothing should be rendered for invalid config")
	}
}

func TestRunUnknownFlag(t *testing.T) {
	if err := run([]string{"-bogus"}, &bytes.Buffer{}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}

func TestRunWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "snowscape.log")
	if err := run([]string{"-once", "-log", logPath}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "landscape created") {
		t.Errorf("Expected creation entry in log, got %q", data)
	}
}

func TestNewPlayerFollowsAudioFlag(t *testing.T) {
	// Only cfg.Audio switches sound on
	t.Setenv("SNOWSCAPE_AUDIO_ENABLED", "true")

	cfg := config.Default()
	cfg.Audio = false
	if _, ok := newPlayer(cfg, logger.Discard()).(audio.NoopPlayer); !ok {
		t.Error("Audio off must yield the silent player")
	}
}
