package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestSpinner_NonTTYPrintsOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSpinner("Scanning Homebrew packages")
	s.SetWriter(buf)

	s.Start()
	s.Stop()

	output := buf.String()
	if output != "Scanning Homebrew packages...\n" {
		t.Errorf("non-TTY spinner output = %q, want single message line", output)
	}
}

func TestSpinner_MultipleStops(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSpinner("Working")
	s.SetWriter(buf)

	s.Start()
	s.Stop()
	// Second stop must be a no-op, not a double close.
	s.Stop()
}

func TestSpinner_StopWithMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSpinner("Working")
	s.SetWriter(buf)

	s.Start()
	s.StopWithMessage("✓ Done")

	if !strings.Contains(buf.String(), "✓ Done") {
		t.Errorf("output missing final message: %q", buf.String())
	}
}
