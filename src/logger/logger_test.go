package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Environment: Production, Level: "info", Output: &buf})

	log.Info("[ComplianceAgent] processed %d contracts", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["message"] != "[ComplianceAgent] processed 3 contracts" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
		{"bogus", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Options{Environment: Production, Level: tt.level, Output: &buf})

			log.Debug("debug line")
			log.Info("info line")
			log.Error("error line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug emitted = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info emitted = %v, want %v", got, tt.wantInfo)
			}
			if !strings.Contains(out, "error line") {
				t.Error("error line should always be emitted")
			}
		})
	}
}

func TestMessageWithoutArgsIsNotFormatted(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Environment: Production, Output: &buf})

	log.Info("score 100%")

	if !strings.Contains(buf.String(), "score 100%") || strings.Contains(buf.String(), "%!") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDevelopmentConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Environment: Development, Output: &buf})

	log.Info("hello %s", "world")

	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("console output missing message: %q", buf.String())
	}
}

func TestSilentLogger(t *testing.T) {
	var log Logger = NewSilentLogger()
	log.Info("ignored %d", 1)
	log.Error("ignored")
	log.Debug("ignored")
}
