package core

// Stepper decides how the elapsed wall-clock time of a frame is split into simulation steps.
type Stepper interface {
	// Advance calls step zero or more times with the dt each step should integrate.
	Advance(elapsed float32, step func(dt float32))
}

// VariableStep runs exactly one step with the measured elapsed time.
// Behaviour depends on frame rate.
type VariableStep struct{}

func (VariableStep) Advance(elapsed float32, step func(dt float32)) {
	if elapsed < 0 {
		elapsed = 0
	}
	step(elapsed)
}

// FixedStep integrates in constant increments of Step and carries the remainder to the next
// frame. MaxSteps bounds the catch-up after a long frame; time beyond it is dropped.
type FixedStep struct {
	Step     float32
	MaxSteps int

	accumulator float32
}

func NewFixedStep(step float32, maxSteps int) *FixedStep {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &FixedStep{Step: step, MaxSteps: maxSteps}
}

func (f *FixedStep) Advance(elapsed float32, step func(dt float32)) {
	if elapsed > 0 {
		f.accumulator += elapsed
	}

	steps := 0
	for f.accumulator >= f.Step && steps < f.MaxSteps {
		step(f.Step)
		f.accumulator -= f.Step
		steps++
	}

	if steps == f.MaxSteps && f.accumulator >= f.Step {
		f.accumulator = 0
	}
}

// Pending is the time carried over to the next frame.
func (f *FixedStep) Pending() float32 {
	return f.accumulator
}
