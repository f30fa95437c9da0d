package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"PongArena/core"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvVariable = "PONG_ENV"
const DefaultEnv = "local"

const FrontendTerminal = "terminal"
const FrontendDesktop = "desktop"

const TimestepVariable = "variable"
const TimestepFixed = "fixed"

// property keys, as written in properties/<env>.properties
const (
	keyFrontend         = "FRONTEND"
	keyWindowTitle      = "WINDOW_TITLE"
	keyFrameInterval    = "FRAME_INTERVAL_MS"
	keyTimestep         = "TIMESTEP"
	keyFixedStep        = "FIXED_STEP_MS"
	keyMaxStepsPerFrame = "MAX_STEPS_PER_FRAME"
	keyKeyHold          = "KEY_HOLD_MS"
)

// flag names
const (
	flagEnv       = "env"
	flagConfigDir = "config-dir"
	flagFrontend  = "frontend"
	flagTimestep  = "timestep"
)

type Settings struct {
	Env              string
	Frontend         string
	WindowTitle      string
	FrameInterval    time.Duration
	Timestep         string
	FixedStep        time.Duration
	MaxStepsPerFrame int
	KeyHold          time.Duration
}

// Flags declares the command line flags that override the properties file.
func Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	flags.String(flagEnv, "", "properties environment (defaults to $"+EnvVariable+" or "+DefaultEnv+")")
	flags.String(flagConfigDir, ".", "directory holding properties/ and logger.properties")
	flags.String(flagFrontend, "", "front end to run: terminal or desktop")
	flags.String(flagTimestep, "", "integration policy: variable or fixed")
	return flags
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyFrontend, FrontendTerminal)
	v.SetDefault(keyWindowTitle, "Pong")
	v.SetDefault(keyFrameInterval, 16)
	v.SetDefault(keyTimestep, TimestepVariable)
	v.SetDefault(keyFixedStep, 16)
	v.SetDefault(keyMaxStepsPerFrame, 5)
	v.SetDefault(keyKeyHold, 180)
}

// ConfigDir returns the --config-dir flag value.
func ConfigDir(flags *pflag.FlagSet) string {
	dir, err := flags.GetString(flagConfigDir)
	if err != nil || dir == "" {
		return "."
	}
	return dir
}

// ReadProperties loads properties/<env>.properties below the configured directory and applies
// flag overrides. A missing file leaves the defaults in place.
func ReadProperties(flags *pflag.FlagSet) (Settings, error) {
	env, _ := flags.GetString(flagEnv)
	if env == "" {
		env = os.Getenv(EnvVariable)
	}
	if env == "" {
		env = DefaultEnv
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(ConfigDir(flags))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read properties %q: %w", env, err)
		}
	}

	if err := v.BindPFlag(keyFrontend, flags.Lookup(flagFrontend)); err != nil {
		return Settings{}, err
	}
	if err := v.BindPFlag(keyTimestep, flags.Lookup(flagTimestep)); err != nil {
		return Settings{}, err
	}

	return parse(v, env)
}

func parse(v *viper.Viper, env string) (Settings, error) {
	s := Settings{Env: env}

	s.Frontend = cast.ToString(v.Get(keyFrontend))
	if s.Frontend != FrontendTerminal && s.Frontend != FrontendDesktop {
		return Settings{}, fmt.Errorf("%s: unknown front end %q", keyFrontend, s.Frontend)
	}

	s.WindowTitle = cast.ToString(v.Get(keyWindowTitle))

	s.Timestep = cast.ToString(v.Get(keyTimestep))
	if s.Timestep != TimestepVariable && s.Timestep != TimestepFixed {
		return Settings{}, fmt.Errorf("%s: unknown timestep %q", keyTimestep, s.Timestep)
	}

	var err error
	if s.FrameInterval, err = positiveMillis(v, keyFrameInterval); err != nil {
		return Settings{}, err
	}
	if s.FixedStep, err = positiveMillis(v, keyFixedStep); err != nil {
		return Settings{}, err
	}
	if s.KeyHold, err = positiveMillis(v, keyKeyHold); err != nil {
		return Settings{}, err
	}

	s.MaxStepsPerFrame, err = cast.ToIntE(v.Get(keyMaxStepsPerFrame))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", keyMaxStepsPerFrame, err)
	}
	if s.MaxStepsPerFrame < 1 {
		return Settings{}, fmt.Errorf("%s: must be at least 1, got %d", keyMaxStepsPerFrame, s.MaxStepsPerFrame)
	}

	return s, nil
}

func positiveMillis(v *viper.Viper, key string) (time.Duration, error) {
	ms, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if ms <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// Stepper builds the integration policy for the simulation.
func (s Settings) Stepper() core.Stepper {
	if s.Timestep == TimestepFixed {
		return core.NewFixedStep(Millis(s.FixedStep), s.MaxStepsPerFrame)
	}
	return core.VariableStep{}
}

// Millis converts a duration to the millisecond unit the simulation runs in.
func Millis(d time.Duration) float32 {
	return float32(d.Seconds() * 1000)
}
