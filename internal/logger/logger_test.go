package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func reset() { Init(Options{}) }

func TestInit_DefaultLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer reset()

	Info("hello info")
	if !strings.Contains(buf.String(), "hello info") {
		t.Error("info should be logged at default level")
	}

	buf.Reset()
	Debug("hello debug")
	if strings.Contains(buf.String(), "hello debug") {
		t.Error("debug should be suppressed at default level")
	}
}

func TestInit_Debug(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer reset()

	Debug("verbose detail")
	if !strings.Contains(buf.String(), "verbose detail") {
		t.Error("debug should be logged when Debug=true")
	}
}

func TestInit_Quiet(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Quiet: true, Output: buf})
	defer reset()

	Info("chatty")
	Warn("still chatty")
	if buf.Len() != 0 {
		t.Errorf("info/warn should be suppressed when Quiet=true, got %q", buf.String())
	}

	Error("broken")
	if !strings.Contains(buf.String(), "broken") {
		t.Error("errors must still be logged when Quiet=true")
	}
}

func TestInit_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer reset()

	Info("structured", "count", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "structured" {
		t.Errorf("unexpected msg field: %v", entry["msg"])
	}
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer reset()

	l := With("query", "dentist austin")
	l.Info("scoped")
	if !strings.Contains(buf.String(), "dentist austin") {
		t.Error("With attributes should appear in output")
	}
}
