package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"PongArena/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "properties"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "properties", env+".properties"), []byte(content), 0o644))
	return dir
}

func readWithArgs(t *testing.T, args ...string) (Settings, error) {
	t.Helper()
	flags := Flags()
	require.NoError(t, flags.Parse(args))
	return ReadProperties(flags)
}

func TestReadPropertiesDefaults(t *testing.T) {
	t.Setenv(EnvVariable, "")

	settings, err := readWithArgs(t, "--config-dir", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Settings{
		Env:              DefaultEnv,
		Frontend:         FrontendTerminal,
		WindowTitle:      "Pong",
		FrameInterval:    16 * time.Millisecond,
		Timestep:         TimestepVariable,
		FixedStep:        16 * time.Millisecond,
		MaxStepsPerFrame: 5,
		KeyHold:          180 * time.Millisecond,
	}, settings)
}

func TestReadPropertiesFromFile(t *testing.T) {
	dir := writeProperties(t, "arcade", `
FRONTEND=desktop
WINDOW_TITLE=Arcade Pong
FRAME_INTERVAL_MS=8
TIMESTEP=fixed
FIXED_STEP_MS=4
MAX_STEPS_PER_FRAME=3
KEY_HOLD_MS=250
`)
	t.Setenv(EnvVariable, "arcade")

	settings, err := readWithArgs(t, "--config-dir", dir)
	require.NoError(t, err)

	assert.Equal(t, "arcade", settings.Env)
	assert.Equal(t, FrontendDesktop, settings.Frontend)
	assert.Equal(t, "Arcade Pong", settings.WindowTitle)
	assert.Equal(t, 8*time.Millisecond, settings.FrameInterval)
	assert.Equal(t, TimestepFixed, settings.Timestep)
	assert.Equal(t, 4*time.Millisecond, settings.FixedStep)
	assert.Equal(t, 3, settings.MaxStepsPerFrame)
	assert.Equal(t, 250*time.Millisecond, settings.KeyHold)
}

func TestFlagsOverrideFile(t *testing.T) {
	dir := writeProperties(t, "dev", "FRONTEND=desktop\nTIMESTEP=fixed\n")
	t.Setenv(EnvVariable, "ignored")

	settings, err := readWithArgs(t, "--config-dir", dir, "--env", "dev", "--frontend", "terminal")
	require.NoError(t, err)

	assert.Equal(t, "dev", settings.Env)
	assert.Equal(t, FrontendTerminal, settings.Frontend)
	assert.Equal(t, TimestepFixed, settings.Timestep)
}

func TestReadPropertiesRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"unknown front end", "FRONTEND=browser\n"},
		{"unknown timestep", "TIMESTEP=sometimes\n"},
		{"non numeric interval", "FRAME_INTERVAL_MS=fast\n"},
		{"zero fixed step", "FIXED_STEP_MS=0\n"},
		{"negative key hold", "KEY_HOLD_MS=-5\n"},
		{"no steps per frame", "MAX_STEPS_PER_FRAME=0\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeProperties(t, "bad", tc.content)
			_, err := readWithArgs(t, "--config-dir", dir, "--env", "bad")
			assert.Error(t, err)
		})
	}
}

func TestSettingsStepper(t *testing.T) {
	variable := Settings{Timestep: TimestepVariable}
	assert.Equal(t, core.VariableStep{}, variable.Stepper())

	fixed := Settings{Timestep: TimestepFixed, FixedStep: 10 * time.Millisecond, MaxStepsPerFrame: 4}
	stepper, ok := fixed.Stepper().(*core.FixedStep)
	require.True(t, ok)
	assert.Equal(t, float32(10), stepper.Step)
	assert.Equal(t, 4, stepper.MaxSteps)
}

func TestMillis(t *testing.T) {
	assert.Equal(t, float32(16), Millis(16*time.Millisecond))
	assert.Equal(t, float32(0.5), Millis(500*time.Microsecond))
	assert.Equal(t, float32(0), Millis(0))
}
