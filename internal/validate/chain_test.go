package validate

import "testing"

func defaultChain() *Chain {
	return NewChain(DefaultConfig("en"))
}

func TestValidateAcceptsTechnicalTerms(t *testing.T) {
	c := defaultChain()
	for _, term := range []string{
		"Pressure Transmitter",
		"Stirrer",
		"heat exchanger",
		"MEMS",
		"gas-liquid separator",
		"pH value measurement",
	} {
		v := c.Validate(term)
		if !v.Accepted {
			t.Fatalf("%q rejected: %s", term, v.Reason)
		}
		if v.Reason != "" {
			t.Fatalf("accepted verdict carries reason %q", v.Reason)
		}
	}
}

func TestValidateRejections(t *testing.T) {
	c := defaultChain()
	cases := []struct {
		term   string
		reason string
	}{
		{"ab", ReasonTooShort},
		{"", ReasonTooShort},
		{"4000", ReasonNumber},
		{"70%", ReasonNumber},
		{"3,5", ReasonNumber},
		{"[%]", ReasonSymbol},
		{"...", ReasonSymbol},
		{"the", ReasonStopword},
		{"The Pressure Transmitter", ReasonLeadingFiller},
		{"These Results", ReasonLeadingFiller},
		{"Which Valve", ReasonLeadingFiller},
		{"More Power", ReasonLeadingFiller},
		{"and the reactor", ReasonFragmentStarter},
		{"for measurement", ReasonFragmentStarter},
		{"tion", ReasonMorpheme},
		{"ment", ReasonMorpheme},
		{"time", ReasonGeneric},
		{"times", ReasonGeneric},
		{"one two three four five", ReasonTooManyWords},
		{"Pressure\nDrop", ReasonControlChars},
		{"Tthhee Ssttiirrrreerr", ReasonOCRDuplication},
		{"5.4 Example D", ReasonArtifact},
		{"et al", ReasonArtifact},
		{"cid:118 marker", ReasonArtifact},
		{"pp. 14-16", ReasonArtifact},
		{"trans- former", ReasonHyphenRemnant},
		{"mXzQyW valve", ReasonCapitalization},
		{"ABCDEFGHIJKL", ReasonCapitalization},
	}
	for _, tc := range cases {
		v := c.Validate(tc.term)
		if v.Accepted {
			t.Fatalf("%q was accepted, want rejection %q", tc.term, tc.reason)
		}
		if v.Reason != tc.reason {
			t.Fatalf("%q rejected as %q, want %q", tc.term, v.Reason, tc.reason)
		}
	}
}

func TestValidateLeadingHyphenRejected(t *testing.T) {
	c := defaultChain()
	for _, term := range []string{"-able", "Mem-"} {
		if v := c.Validate(term); v.Accepted {
			t.Fatalf("%q should be rejected", term)
		}
	}
}

func TestValidateDeterminism(t *testing.T) {
	c := defaultChain()
	for _, term := range []string{"Pressure Transmitter", "[%]", "", "5.4 Example D"} {
		first := c.Validate(term)
		second := c.Validate(term)
		if first != second {
			t.Fatalf("non-deterministic verdict for %q: %+v vs %+v", term, first, second)
		}
	}
}

func TestValidateWithReportsRuleName(t *testing.T) {
	c := defaultChain()
	v, rule := c.ValidateWith("[%]")
	if v.Accepted || rule != "symbol_ratio" {
		t.Fatalf("unexpected rule attribution: %+v via %q", v, rule)
	}
	if _, rule := c.ValidateWith("Stirrer"); rule != "" {
		t.Fatalf("accepted term should not name a rule, got %q", rule)
	}
}

func TestBatchValidate(t *testing.T) {
	c := defaultChain()
	report := c.BatchValidate([]string{"Stirrer", "70%", "4000", "The Valve"})
	if len(report.Accepted) != 1 || report.Accepted[0] != "Stirrer" {
		t.Fatalf("unexpected accepted set: %v", report.Accepted)
	}
	if report.CountsByReason[ReasonNumber] != 2 {
		t.Fatalf("expected 2 number rejections, got %d", report.CountsByReason[ReasonNumber])
	}
	if report.Rejected["The Valve"] != ReasonLeadingFiller {
		t.Fatalf("unexpected reason for The Valve: %q", report.Rejected["The Valve"])
	}
}

func TestGermanWordlists(t *testing.T) {
	c := NewChain(DefaultConfig("de"))
	if v := c.Validate("die Pumpe"); v.Accepted || v.Reason != ReasonLeadingFiller {
		t.Fatalf("german article not caught: %+v", v)
	}
	if v := c.Validate("Druckmessumformer"); !v.Accepted {
		t.Fatalf("german compound rejected: %s", v.Reason)
	}
}

func TestProfilesShareRuleSet(t *testing.T) {
	def := NewChain(DefaultConfig("en"))
	strict := NewChain(StrictConfig("en"))
	lenient := NewChain(LenientConfig("en"))
	if len(def.Rules()) != len(strict.Rules()) || len(def.Rules()) != len(lenient.Rules()) {
		t.Fatalf("profiles must share the same rule skeleton")
	}
	fiveWords := "alpha beta gamma delta epsilon"
	if v := lenient.Validate(fiveWords); !v.Accepted {
		t.Fatalf("lenient should allow 5 words: %s", v.Reason)
	}
	if v := def.Validate(fiveWords); v.Accepted {
		t.Fatalf("default should cap at 4 words")
	}
}
