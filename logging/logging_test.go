package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoDisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("Expected no output before EnableInfo, got %q", buf.String())
	}

	logger.EnableInfo()
	logger.Info("hello %s", "world")
	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("Expected info output after EnableInfo, got %q", buf.String())
	}
}

func TestWarnAndErrorAlwaysOn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Warn("warned")
	logger.Error("failed")

	if !strings.Contains(buf.String(), "warned") {
		t.Errorf("Expected warn output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "failed") {
		t.Errorf("Expected error output, got %q", buf.String())
	}
}

func TestTraceSubsystemGating(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Trace("stdin", "dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected no trace output before EnableTrace, got %q", buf.String())
	}

	logger.EnableTrace("stdin,render")
	logger.Trace("stdin", "first")
	logger.Trace("render", "second")
	logger.Trace("other", "third")

	output := buf.String()
	if !strings.Contains(output, "first") || !strings.Contains(output, "second") {
		t.Errorf("Expected traces for enabled subsystems, got %q", output)
	}
	if strings.Contains(output, "third") {
		t.Errorf("Expected no trace for disabled subsystem, got %q", output)
	}
}

func TestTraceAllSubsystems(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.EnableTrace("all")
	logger.Trace("anything", "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected trace output with \"all\" enabled, got %q", buf.String())
	}
}
