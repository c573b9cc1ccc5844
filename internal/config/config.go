package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. RATIOLAB_LOG_LEVEL.
const EnvPrefix = "RATIOLAB"

// Flag names registered by RegisterFlags.
const (
	FlagConfig    = "config"
	FlagCount     = "count"
	FlagSeed      = "seed"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagLogFile   = "log-file"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	FlagCount:     "question_count",
	FlagSeed:      "seed",
	FlagLogLevel:  "log_level",
	FlagLogFormat: "log_format",
	FlagLogFile:   "log_file",
}

// Config holds all application configuration.
type Config struct {
	// QuestionCount is the size of each problem set.
	QuestionCount int `mapstructure:"question_count" validate:"min=1,max=5"`

	// AnswerPrecision is the number of decimals typed answers are rounded to.
	AnswerPrecision int `mapstructure:"answer_precision" validate:"min=0,max=4"`

	AnswerMin float64 `mapstructure:"answer_min" validate:"gte=0"`
	AnswerMax float64 `mapstructure:"answer_max" validate:"gtfield=AnswerMin"`

	// Seed fixes the random source. Zero picks one from the clock.
	Seed uint64 `mapstructure:"seed"`

	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=pretty json"`

	// LogFile receives log output of the interactive app. Empty discards it.
	LogFile string `mapstructure:"log_file"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		QuestionCount:   problemgen.DefaultSetSize,
		AnswerPrecision: 2,
		AnswerMin:       0,
		AnswerMax:       1000,
		LogLevel:        "warn",
		LogFormat:       "pretty",
	}
}

// AnswerOptions returns the bounds and precision applied to typed answers.
func (c *Config) AnswerOptions() problemgen.AnswerOptions {
	return problemgen.AnswerOptions{
		Min:       c.AnswerMin,
		Max:       c.AnswerMax,
		Precision: c.AnswerPrecision,
	}
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "Path to a YAML config file")
	fs.Int(FlagCount, d.QuestionCount, "Questions per problem set (1-5)")
	fs.Uint64(FlagSeed, d.Seed, "Random seed (0 picks one from the clock)")
	fs.String(FlagLogLevel, d.LogLevel, "Log level (trace, debug, info, warn, error, disabled)")
	fs.String(FlagLogFormat, d.LogFormat, "Log format (pretty, json)")
	fs.String(FlagLogFile, d.LogFile, "Write logs to this file")
}

// Load resolves the configuration. Precedence, highest first: flags set on
// fs, RATIOLAB_* environment variables (a .env file in the working directory
// is read if present), the --config file, defaults. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
	}

	if path := configPath(fs); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field bounds.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("question_count", d.QuestionCount)
	v.SetDefault("answer_precision", d.AnswerPrecision)
	v.SetDefault("answer_min", d.AnswerMin)
	v.SetDefault("answer_max", d.AnswerMax)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_file", d.LogFile)
}

func configPath(fs *pflag.FlagSet) string {
	if fs == nil {
		return ""
	}
	p, _ := fs.GetString(FlagConfig)
	return p
}
