package transition

import (
	"time"

	"github.com/bugabinga/kira/logger"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// Register is the mutable brightness value the engine drives. Tests
// substitute an in-memory fake for the real sysfs device.
type Register interface {
	Brightness() (int, error)
	SetBrightness(value int) error
}

// DefaultStepWait paces each unit step. Tuned by eye against an
// intel_backlight panel with a max_brightness of 4880, so the total fade
// time scales with the distance covered.
const DefaultStepWait = 100 * time.Nanosecond

// Engine fades a brightness register to a target value one unit at a time,
// pausing between steps so the change reads as smooth rather than abrupt.
type Engine struct {
	clock    clock.Clock
	stepWait time.Duration
}

// NewEngine returns an engine that paces steps on the given clock.
func NewEngine(cl clock.Clock, stepWait time.Duration) *Engine {
	return &Engine{
		clock:    cl,
		stepWait: stepWait,
	}
}

// Run steps the register from its current value to target. If the register
// already holds the target, nothing is written. A failed write aborts the
// transition immediately and leaves the register at the last value that
// went through.
func (e *Engine) Run(reg Register, target int) error {
	current, err := reg.Brightness()
	if err != nil {
		return err
	}
	if current == target {
		return nil
	}

	log := logger.GetProjectLogger()
	log.WithFields(logrus.Fields{"from": current, "to": target}).Debug("Starting brightness transition")

	step := 1
	if target < current {
		step = -1
	}
	for current != target {
		current += step
		if err := reg.SetBrightness(current); err != nil {
			return err
		}
		e.clock.Sleep(e.stepWait)
	}
	return nil
}
