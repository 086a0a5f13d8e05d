package extract

import "testing"

func TestSplitSentencesBasic(t *testing.T) {
	got := SplitSentences("The pump failed. The valve stayed open. Pressure dropped.")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	if got[1] != "The valve stayed open." {
		t.Fatalf("unexpected second sentence: %q", got[1])
	}
}

func TestSplitSentencesAbbreviations(t *testing.T) {
	got := SplitSentences("Use a gauge, e.g. Bourdon tube. See Fig. 4 for details.")
	if len(got) != 2 {
		t.Fatalf("abbreviation split wrong: %v", got)
	}
}

func TestSplitSentencesInitials(t *testing.T) {
	got := SplitSentences("The method of J. Smith applies. It converges fast.")
	if len(got) != 2 {
		t.Fatalf("initial split wrong: %v", got)
	}
}

func TestSplitSentencesNoTerminal(t *testing.T) {
	got := SplitSentences("a fragment without terminal punctuation")
	if len(got) != 1 {
		t.Fatalf("expected single fragment, got %v", got)
	}
}

func TestSplitSentencesEmpty(t *testing.T) {
	if got := SplitSentences(""); len(got) != 0 {
		t.Fatalf("expected no sentences, got %v", got)
	}
}
