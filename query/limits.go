package q

// Fixed fallbacks used when neither the caller nor process-wide
// configuration supplies a value.
const (
	DefaultPageLimit = 25
	DefaultMaxLimit  = 100
	DefaultMinLimit  = 1
)

// RangeMode selects what happens when a requested limit falls outside the
// configured bounds.
type RangeMode int8

const (
	// Saturate clamps the limit to the violated bound.
	Saturate RangeMode = iota
	// UseDefault substitutes the configured default limit instead.
	UseDefault
)

// LimitConfig holds the bounds and out-of-range behaviour for page limits.
// A zero value for any of the numeric fields means "use the fixed fallback",
// so callers can override fields independently of each other.
type LimitConfig struct {
	DefaultLimit int
	MaxLimit     int
	MinLimit     int
	Overflow     RangeMode
	Underflow    RangeMode
}

func (cfg LimitConfig) withFallbacks() LimitConfig {
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = DefaultPageLimit
	}
	if cfg.MaxLimit == 0 {
		cfg.MaxLimit = DefaultMaxLimit
	}
	if cfg.MinLimit == 0 {
		cfg.MinLimit = DefaultMinLimit
	}
	return cfg
}

// ResolveLimit computes the page size actually used for a request. A nil
// requested limit means the caller expressed no preference and gets the
// configured default.
//
// A limit is a hint, not a contract: out-of-range values are clamped to the
// violated bound or swapped for the default depending on the configured
// mode, never rejected.
func ResolveLimit(requested *int, cfg LimitConfig) int {
	cfg = cfg.withFallbacks()

	if requested == nil {
		return cfg.DefaultLimit
	}

	limit := *requested
	switch {
	case limit > cfg.MaxLimit && cfg.Overflow == UseDefault:
		return cfg.DefaultLimit
	case limit > cfg.MaxLimit:
		return cfg.MaxLimit
	case limit < cfg.MinLimit && cfg.Underflow == UseDefault:
		return cfg.DefaultLimit
	case limit < cfg.MinLimit:
		return cfg.MinLimit
	default:
		return limit
	}
}

// FetchSize reports how many records the caller should over-fetch for a
// page of the given limit.
//
// One extra row is enough to detect a next page without a second query. A
// cursor-bounded fetch needs a second spare row because the query layer may
// have used an inclusive bound, in which case the pivot record itself comes
// back with the results and is dropped during assembly (see Assemble).
func FetchSize(limit int, hasAfter, hasBefore bool) int {
	if hasAfter || hasBefore {
		return limit + 2
	}
	return limit + 1
}
