package validate

// Config carries the tunable thresholds of a validation profile. The rule set
// is fixed; profiles only move the knobs.
type Config struct {
	Language           string
	MinLength          int
	MaxLength          int
	MaxWords           int
	MaxSymbolRatio     float64
	MaxCaseTransitions int
	MinAcronymLength   int
	MaxAcronymLength   int
}

func DefaultConfig(language string) Config {
	return Config{
		Language:           language,
		MinLength:          3,
		MaxLength:          90,
		MaxWords:           4,
		MaxSymbolRatio:     0.25,
		MaxCaseTransitions: 3,
		MinAcronymLength:   2,
		MaxAcronymLength:   8,
	}
}

func StrictConfig(language string) Config {
	cfg := DefaultConfig(language)
	cfg.MaxLength = 64
	cfg.MaxWords = 3
	cfg.MaxSymbolRatio = 0.15
	cfg.MaxCaseTransitions = 2
	return cfg
}

func LenientConfig(language string) Config {
	cfg := DefaultConfig(language)
	cfg.MaxLength = 100
	cfg.MaxWords = 5
	cfg.MaxSymbolRatio = 0.35
	cfg.MaxCaseTransitions = 4
	return cfg
}

// Profile resolves a profile name from configuration. Unknown names fall back
// to the default profile.
func Profile(name, language string) Config {
	switch name {
	case "strict":
		return StrictConfig(language)
	case "lenient":
		return LenientConfig(language)
	default:
		return DefaultConfig(language)
	}
}
