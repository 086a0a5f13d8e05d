package extract

import "testing"

func TestPreprocessStripsLeadingArticle(t *testing.T) {
	p := NewPreprocessor("en")
	if got := p.Preprocess("The Pressure Transmitter"); got != "Pressure Transmitter" {
		t.Fatalf("article not stripped: %q", got)
	}
	if got := p.Preprocess("a heat exchanger"); got != "heat exchanger" {
		t.Fatalf("lowercase article not stripped: %q", got)
	}
}

func TestPreprocessStripsOnlyLeadingArticle(t *testing.T) {
	p := NewPreprocessor("en")
	if got := p.Preprocess("state of the art"); got != "state of the art" {
		t.Fatalf("mid-phrase article must stay: %q", got)
	}
}

func TestPreprocessArticleEquivalence(t *testing.T) {
	p := NewPreprocessor("en")
	for _, art := range []string{"the", "a", "an", "The", "An"} {
		if p.Preprocess(art+" Reactor") != p.Preprocess("Reactor") {
			t.Fatalf("preprocess(%q + term) != preprocess(term)", art)
		}
	}
}

func TestPreprocessGermanArticles(t *testing.T) {
	p := NewPreprocessor("de")
	if got := p.Preprocess("die Pumpe"); got != "Pumpe" {
		t.Fatalf("german article not stripped: %q", got)
	}
}

func TestPreprocessHyphens(t *testing.T) {
	p := NewPreprocessor("en")
	if got := p.Preprocess("-able"); got != "able" {
		t.Fatalf("leading hyphen kept: %q", got)
	}
	if got := p.Preprocess("Mem-"); got != "Mem" {
		t.Fatalf("trailing hyphen kept: %q", got)
	}
	if got := p.Preprocess("gas-liquid"); got != "gas-liquid" {
		t.Fatalf("internal hyphen must stay: %q", got)
	}
}

func TestPreprocessWhitespace(t *testing.T) {
	p := NewPreprocessor("en")
	if got := p.Preprocess("  flow \t meter \n"); got != "flow meter" {
		t.Fatalf("whitespace not normalized: %q", got)
	}
}

func TestPreprocessEmptyResult(t *testing.T) {
	p := NewPreprocessor("en")
	for _, raw := range []string{"", "   ", "-", "the -"} {
		if got := p.Preprocess(raw); got != "" {
			t.Fatalf("expected empty result for %q, got %q", raw, got)
		}
	}
}
