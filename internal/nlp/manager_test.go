package nlp

import (
	"context"
	"testing"
)

func TestParseAnalyzerList(t *testing.T) {
	list := ParseAnalyzerList("prose|mock")
	if len(list) != 2 {
		t.Fatalf("expected 2 analyzers got %d", len(list))
	}
	if list[0].Name() != "prose" || list[1].Name() != "mock" {
		t.Fatalf("unexpected analyzer order: %s, %s", list[0].Name(), list[1].Name())
	}
}

func TestParseAnalyzerListUnknownDegrades(t *testing.T) {
	list := ParseAnalyzerList("spacy")
	if len(list) != 1 || list[0].Name() != "none" {
		t.Fatalf("unknown analyzer should map to none")
	}
	if Select(list) != nil {
		t.Fatalf("none analyzer must never be selected")
	}
}

func TestSelectPrefersFirstAvailable(t *testing.T) {
	a := Select([]Analyzer{noneAnalyzer{}, NewMockAnalyzer()})
	if a == nil || a.Name() != "mock" {
		t.Fatalf("expected mock to be selected")
	}
}

func TestMockAnalyzerCapitalizedRuns(t *testing.T) {
	a := NewMockAnalyzer()
	got, err := a.Analyze(context.Background(), "The Pressure Transmitter is a device.")
	if err != nil {
		t.Fatalf("mock analyze: %v", err)
	}
	if len(got.NounPhrases) != 1 || got.NounPhrases[0] != "The Pressure Transmitter" {
		t.Fatalf("unexpected noun phrases: %v", got.NounPhrases)
	}
}

func TestChunkNounPhrases(t *testing.T) {
	tokens := []taggedToken{
		{"The", "DT"},
		{"pressure", "NN"},
		{"transmitter", "NN"},
		{"measures", "VBZ"},
		{"static", "JJ"},
		{"pressure", "NN"},
		{"accurately", "RB"},
	}
	got := chunkNounPhrases(tokens)
	if len(got) != 2 {
		t.Fatalf("expected 2 phrases got %v", got)
	}
	if got[0] != "pressure transmitter" || got[1] != "static pressure" {
		t.Fatalf("unexpected phrases: %v", got)
	}
}
