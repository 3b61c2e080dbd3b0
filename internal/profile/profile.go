// Package profile loads the runtime configuration of the resolution
// service from defaults, an optional config file and CHRONOPARSE_*
// environment variables.
package profile

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hrygo/chronoparse/plugin/datetime/timezone"
)

// EnvPrefix prefixes every environment variable the profile reads.
const EnvPrefix = "CHRONOPARSE"

// Profile is the configuration of the resolution service.
type Profile struct {
	// Locale selects the locale configuration, e.g. "en-us".
	Locale string
	// SplitDateAndTime keeps modified points as points and reports
	// date-times as times. CHRONOPARSE_SPLIT_DATE_AND_TIME
	SplitDateAndTime bool
	// StrictContracts panics on internal invariant violations instead of
	// degrading to no-match. CHRONOPARSE_STRICT_CONTRACTS
	StrictContracts bool
	// CenturyFutureMax and CenturyPastMin are the two-digit year pivots.
	CenturyFutureMax int
	CenturyPastMin   int
	// DefaultTimezone is the IANA zone reference moments are read in.
	DefaultTimezone string
	// Parallelism bounds the concurrent resolutions of one batch.
	Parallelism int
	// CacheSize is the number of memoised resolutions; 0 disables the cache.
	CacheSize int
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "en-us")
	v.SetDefault("split_date_and_time", false)
	v.SetDefault("strict_contracts", false)
	v.SetDefault("century_future_max", 30)
	v.SetDefault("century_past_min", 40)
	v.SetDefault("default_timezone", timezone.TimezoneUTC)
	v.SetDefault("parallelism", runtime.NumCPU())
	v.SetDefault("cache_size", 1024)
	v.SetDefault("log_level", "info")
}

// Default returns the profile built from defaults only.
func Default() *Profile {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// Load reads the profile. configFile may be empty; environment variables
// override the file, which overrides the defaults.
func Load(configFile string) (*Profile, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
		}
	}

	p := fromViper(v)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func fromViper(v *viper.Viper) *Profile {
	return &Profile{
		Locale:           strings.ToLower(v.GetString("locale")),
		SplitDateAndTime: v.GetBool("split_date_and_time"),
		StrictContracts:  v.GetBool("strict_contracts"),
		CenturyFutureMax: v.GetInt("century_future_max"),
		CenturyPastMin:   v.GetInt("century_past_min"),
		DefaultTimezone:  v.GetString("default_timezone"),
		Parallelism:      v.GetInt("parallelism"),
		CacheSize:        v.GetInt("cache_size"),
		LogLevel:         v.GetString("log_level"),
	}
}

// Validate rejects inconsistent settings and fills derived defaults.
func (p *Profile) Validate() error {
	if p.Locale == "" {
		return errors.New("locale must be set")
	}
	if p.CenturyFutureMax < 0 || p.CenturyPastMin > 100 || p.CenturyFutureMax > p.CenturyPastMin {
		return errors.Errorf("century pivots must satisfy 0 <= future max (%d) <= past min (%d) <= 100",
			p.CenturyFutureMax, p.CenturyPastMin)
	}
	if _, err := timezone.ParseTimezone(p.DefaultTimezone); err != nil {
		return errors.Wrapf(err, "invalid default timezone")
	}
	if p.Parallelism <= 0 {
		p.Parallelism = runtime.NumCPU()
	}
	if p.CacheSize < 0 {
		return errors.Errorf("cache size must not be negative, got %d", p.CacheSize)
	}
	switch strings.ToLower(p.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("unknown log level %q", p.LogLevel)
	}
	return nil
}
