package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bugabinga/kira/backlight"
	"github.com/bugabinga/kira/logger"
	"github.com/bugabinga/kira/percent"
	"github.com/bugabinga/kira/transition"
	commonserrors "github.com/gruntwork-io/go-commons/errors"
	"k8s.io/utils/clock"
)

const usageText = `
usage: kira [+-][percent]

percent must be a number between 0 and 100.
A prefix of either - or + is allowed.
Without a prefix, the brightness gets set to the given percentage.
With the + prefix, the given percentage gets added to the current brightness.
With the - prefix, the given percentage gets subtracted from the current brightness.

You need permission to modify the backlight device in /sys/class/backlight/.
`

const deviceErrorMessage = `Could not access the backlight device.
Does it exist? Usually /sys/class/backlight/intel_backlight/ or similar.
Also, do you have permission to edit it?
On most Linux distributions you need to be part of a special group (video?).`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log := logger.GetProjectLogger()
		log.Error(friendlyMessage(err))
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func run(args []string) error {
	dev := backlight.NewSysfs(backlight.DefaultDir)

	max, err := dev.MaxBrightness()
	if err != nil {
		return commonserrors.WithStackTrace(err)
	}
	current, err := dev.Brightness()
	if err != nil {
		return commonserrors.WithStackTrace(err)
	}

	// No argument means full brightness.
	target := max
	if len(args) > 0 {
		req, err := percent.Parse(args[0])
		if err != nil {
			return err
		}
		target = req.Target(current, max)
	}

	engine := transition.NewEngine(clock.RealClock{}, transition.DefaultStepWait)
	if err := engine.Run(dev, target); err != nil {
		return commonserrors.WithStackTrace(err)
	}
	return nil
}

// friendlyMessage maps each expected error class to an explanation the user
// can act on.
func friendlyMessage(err error) string {
	var parseErr *percent.ParseError
	var readErr *backlight.ReadError
	var writeErr *backlight.WriteError

	switch {
	case errors.As(err, &parseErr):
		return "The given percent value needs to be a number between 0 and 100."
	case errors.As(err, &readErr), errors.As(err, &writeErr):
		return deviceErrorMessage
	default:
		return "Something unexpected went wrong."
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
