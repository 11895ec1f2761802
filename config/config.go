// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvring/sequence"
)

// EnvPrefix is the environment variable prefix (LVRING_RINGLOG_CAPACITY, …).
const EnvPrefix = "LVRING"

// Defaults. The sequence values mirror the sequence package defaults.
const (
	DefaultRingCapacity = 64
	DefaultLineSize     = 160
	DefaultLogLevel     = "info"
)

// Command-line flags that override configuration keys.
const (
	FlagLogLevel     = "log-level"
	FlagRingCapacity = "ring-capacity"
)

// flagKeys maps flag names to the keys they override.
var flagKeys = map[string]string{
	FlagLogLevel:     "log.level",
	FlagRingCapacity: "ringlog.capacity",
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Sequence configures Sequences created by the CLI (stacks, registries).
type Sequence struct {
	Capacity     int  `mapstructure:"capacity" yaml:"capacity"`
	Growable     bool `mapstructure:"growable" yaml:"growable"`
	GrowthFactor int  `mapstructure:"growth_factor" yaml:"growth_factor"`
	Shrinkable   bool `mapstructure:"shrinkable" yaml:"shrinkable"`
}

// RingLog configures the retained log.
type RingLog struct {
	Capacity int `mapstructure:"capacity" yaml:"capacity"`
	LineSize int `mapstructure:"line_size" yaml:"line_size"`
}

// Log configures the zerolog logger.
type Log struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Console bool   `mapstructure:"console" yaml:"console"`
}

// Config is the full lvring configuration.
type Config struct {
	Sequence Sequence `mapstructure:"sequence" yaml:"sequence"`
	RingLog  RingLog  `mapstructure:"ringlog" yaml:"ringlog"`
	Log      Log      `mapstructure:"log" yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sequence: Sequence{
			Capacity:     sequence.DefaultCapacity,
			Growable:     sequence.DefaultGrowable,
			GrowthFactor: sequence.DefaultGrowthFactor,
			Shrinkable:   sequence.DefaultShrinkable,
		},
		RingLog: RingLog{Capacity: DefaultRingCapacity, LineSize: DefaultLineSize},
		Log:     Log{Level: DefaultLogLevel},
	}
}

// New returns a viper instance primed with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("sequence.capacity", d.Sequence.Capacity)
	v.SetDefault("sequence.growable", d.Sequence.Growable)
	v.SetDefault("sequence.growth_factor", d.Sequence.GrowthFactor)
	v.SetDefault("sequence.shrinkable", d.Sequence.Shrinkable)
	v.SetDefault("ringlog.capacity", d.RingLog.Capacity)
	v.SetDefault("ringlog.line_size", d.RingLog.LineSize)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.console", d.Log.Console)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (if non-empty) from the OS filesystem and decodes it.
func Load(path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), path, nil)
}

// LoadFs is Load reading the config file from fs. Flags in flags named by
// FlagLogLevel or FlagRingCapacity take precedence over every other source
// once set on the command line; flags may be nil.
func LoadFs(fs afero.Fs, path string, flags *pflag.FlagSet) (*Config, error) {
	v := New()
	v.SetFs(fs)
	if err := BindFlags(v, flags); err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	return Decode(v)
}

// BindFlags binds the known override flags present in flags to v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	var f *pflag.Flag
	for name, key := range flagKeys {
		if f = flags.Lookup(name); f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks every section; failures wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Sequence),
		validation.Field(&c.RingLog),
		validation.Field(&c.Log),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Validate ensures capacity >= 1 and growth_factor >= 2.
func (sc Sequence) Validate() error {
	s := sc

	return validation.ValidateStruct(&s,
		validation.Field(&s.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&s.GrowthFactor, validation.Required, validation.Min(2)),
	)
}

// Validate ensures capacity >= 1 and line_size >= 2.
func (rc RingLog) Validate() error {
	r := rc

	return validation.ValidateStruct(&r,
		validation.Field(&r.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&r.LineSize, validation.Required, validation.Min(2)),
	)
}

// Validate ensures level names a zerolog level.
func (lc Log) Validate() error {
	l := lc

	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.By(isLevel)),
	)
}

func isLevel(value interface{}) error {
	s, _ := value.(string)
	_, err := zerolog.ParseLevel(strings.ToLower(s))

	return err
}

// Level parses Log.Level.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.Log.Level))
}

// SequenceOptions converts the sequence section into constructor options.
// Extra options (an error sink, say) are appended last.
func (c *Config) SequenceOptions(extra ...sequence.Option) []sequence.Option {
	opts := []sequence.Option{
		sequence.WithCapacity(c.Sequence.Capacity),
		sequence.WithGrowable(c.Sequence.Growable),
		sequence.WithGrowthFactor(c.Sequence.GrowthFactor),
	}
	if c.Sequence.Shrinkable {
		opts = append(opts, sequence.WithShrinkable())
	}

	return append(opts, extra...)
}

// ToYAML renders c as YAML.
func ToYAML(c *Config) (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
