package definition

import (
	"strings"
	"testing"
)

func TestSynthesizeIsPattern(t *testing.T) {
	d := Synthesize("Pressure Transmitter",
		"The Pressure Transmitter is a device that measures pressure.", []int{3})
	if !d.FromPattern {
		t.Fatalf("expected pattern-based definition, got fallback: %q", d.Text)
	}
	if d.Text != "Pressure Transmitter is a device that measures pressure." {
		t.Fatalf("unexpected definition: %q", d.Text)
	}
}

func TestSynthesizeColonPattern(t *testing.T) {
	d := Synthesize("Reflux", "Reflux: the return of condensed vapor to the column.", nil)
	if !d.FromPattern || !strings.Contains(d.Text, "return of condensed vapor") {
		t.Fatalf("colon pattern failed: %+v", d)
	}
}

func TestSynthesizeRefersToPattern(t *testing.T) {
	d := Synthesize("Dead Time", "Dead time refers to the delay between input and response.", nil)
	if !d.FromPattern || !strings.Contains(d.Text, "delay between input and response") {
		t.Fatalf("refers-to pattern failed: %+v", d)
	}
}

func TestSynthesizeCalledPattern(t *testing.T) {
	d := Synthesize("Stirrer", "A rotating mixing device is called a Stirrer.", nil)
	if !d.FromPattern || !strings.Contains(d.Text, "rotating mixing device") {
		t.Fatalf("called pattern failed: %+v", d)
	}
}

func TestSynthesizeFallbackSnippet(t *testing.T) {
	d := Synthesize("Impeller", "The impeller rotated at 400 rpm during the trial.", []int{7, 9})
	if d.FromPattern {
		t.Fatalf("expected fallback, got pattern definition: %q", d.Text)
	}
	if !strings.Contains(d.Text, "(p. 7, 9)") {
		t.Fatalf("fallback missing page annotation: %q", d.Text)
	}
}

func TestSynthesizeRejectsShortClause(t *testing.T) {
	d := Synthesize("Valve", "The valve is open.", []int{1})
	if d.FromPattern {
		t.Fatalf("short clause should not count as a definition: %q", d.Text)
	}
}

func TestSynthesizeBoundsSnippetLength(t *testing.T) {
	long := strings.Repeat("very long sentence segment ", 20)
	d := Synthesize("Thing", long, nil)
	if len([]rune(d.Text)) > maxSnippetLength+1 {
		t.Fatalf("snippet not bounded: %d runes", len([]rune(d.Text)))
	}
}
