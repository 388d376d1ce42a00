package percent

import (
	"fmt"
	"strconv"

	"github.com/bugabinga/kira/utils"
)

// Mode says how a parsed percentage applies to the current brightness.
type Mode int

const (
	// Absolute sets the brightness to the given percentage of the maximum.
	Absolute Mode = iota

	// Increase adds the given percentage to the current brightness.
	Increase

	// Decrease subtracts the given percentage from the current brightness.
	Decrease
)

// Request is a parsed command-line percentage.
type Request struct {
	Mode  Mode
	Value int
}

// ParseError means the argument was not a usable percentage.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing percent value %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a command-line argument in one of the three input modes: a
// bare number sets the brightness absolutely, a `+` or `-` prefix changes
// it relative to the current value.
func Parse(input string) (Request, error) {
	mode := Absolute
	number := input
	switch {
	case len(input) > 0 && input[0] == '+':
		mode = Increase
		number = input[1:]
	case len(input) > 0 && input[0] == '-':
		mode = Decrease
		number = input[1:]
	}

	value, err := strconv.Atoi(number)
	if err != nil {
		return Request{}, &ParseError{Input: input, Err: err}
	}
	if value < 0 {
		return Request{}, &ParseError{Input: input, Err: fmt.Errorf("percent value is negative")}
	}
	return Request{Mode: mode, Value: value}, nil
}

// Target resolves the request to an absolute register value in [0, max].
// The percentage is clamped to [0,100] before scaling, so a request like
// 150% or a relative change past either end never produces an out-of-range
// value.
func (r Request) Target(current, max int) int {
	pct := utils.Clamp(r.Value, 0, 100)
	value := int(float64(max) * float64(pct) / 100.0)

	switch r.Mode {
	case Increase:
		return utils.Clamp(current+value, 0, max)
	case Decrease:
		return utils.Clamp(current-value, 0, max)
	default:
		return utils.Clamp(value, 0, max)
	}
}
