package config

import (
	"strings"

	"github.com/spf13/viper"

	q "github.com/riverline/pagekit/query"
)

// Configuration keys for process-wide pagination defaults. Each maps to an
// environment variable with the PAGEKIT prefix and dots replaced by
// underscores, e.g. PAGEKIT_PAGINATION_MAX_LIMIT.
const (
	DefaultLimitKey = "pagination.default_limit"
	MaxLimitKey     = "pagination.max_limit"
	MinLimitKey     = "pagination.min_limit"
	OverflowKey     = "pagination.overflow"
	UnderflowKey    = "pagination.underflow"
)

// Limits returns the process-wide limit configuration: environment values
// where set, fixed fallbacks otherwise. The overflow and underflow modes
// accept "saturate" or "default".
//
// The returned value is an independent copy, so it is safe to read from any
// number of goroutines and to locally override individual fields before
// passing it on.
func Limits() q.LimitConfig {
	v := load()

	return q.LimitConfig{
		DefaultLimit: v.GetInt(DefaultLimitKey),
		MaxLimit:     v.GetInt(MaxLimitKey),
		MinLimit:     v.GetInt(MinLimitKey),
		Overflow:     parseMode(v.GetString(OverflowKey)),
		Underflow:    parseMode(v.GetString(UnderflowKey)),
	}
}

func load() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PAGEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(DefaultLimitKey, q.DefaultPageLimit)
	v.SetDefault(MaxLimitKey, q.DefaultMaxLimit)
	v.SetDefault(MinLimitKey, q.DefaultMinLimit)
	v.SetDefault(OverflowKey, "saturate")
	v.SetDefault(UnderflowKey, "saturate")

	return v
}

func parseMode(mode string) q.RangeMode {
	if strings.EqualFold(mode, "default") {
		return q.UseDefault
	}
	return q.Saturate
}
