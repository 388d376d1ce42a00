package backlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultDir is the control directory of the builtin panel. We assume a
// single fixed device; picking between multiple backlights is up to the user.
const DefaultDir = "/sys/class/backlight/intel_backlight"

const (
	brightnessFile    = "brightness"
	maxBrightnessFile = "max_brightness"
)

// Device exposes the brightness register of a single backlight.
type Device interface {
	// Brightness returns the current register value.
	Brightness() (int, error)

	// MaxBrightness returns the device-specific upper bound for the register.
	MaxBrightness() (int, error)

	// SetBrightness writes a new register value.
	SetBrightness(value int) error
}

// ReadError means a control file could not be read or did not hold a number.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError means the kernel rejected a brightness write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Sysfs is a Device backed by a sysfs backlight control directory. The
// kernel exposes two files holding decimal text: the mutable current value
// and a fixed maximum.
type Sysfs struct {
	dir string
}

// NewSysfs returns a Sysfs device rooted at the given control directory.
func NewSysfs(dir string) *Sysfs {
	return &Sysfs{dir: dir}
}

func (s *Sysfs) Brightness() (int, error) {
	return s.readInt(brightnessFile)
}

func (s *Sysfs) MaxBrightness() (int, error) {
	return s.readInt(maxBrightnessFile)
}

func (s *Sysfs) SetBrightness(value int) error {
	path := filepath.Join(s.dir, brightnessFile)
	if err := os.WriteFile(path, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func (s *Sysfs) readInt(name string) (int, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &ReadError{Path: path, Err: err}
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, &ReadError{Path: path, Err: err}
	}
	return value, nil
}
