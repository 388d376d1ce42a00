package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/bugabinga/kira/backlight"
	"github.com/bugabinga/kira/percent"
	commonserrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/stretchr/testify/require"
)

func TestUsageIsBasicallyThere(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	printUsage(&sb)
	usage := sb.String()

	for _, want := range []string{"usage", "kira", "percent", "-", "+", "sys", "device", "permission"} {
		require.Contains(t, usage, want)
	}
}

func TestFriendlyMessage(t *testing.T) {
	t.Parallel()

	parseErr := &percent.ParseError{Input: "five", Err: errors.New("bad syntax")}
	readErr := &backlight.ReadError{Path: "/sys/x/brightness", Err: errors.New("permission denied")}
	writeErr := &backlight.WriteError{Path: "/sys/x/brightness", Err: errors.New("permission denied")}

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"parse error", parseErr, "percent value"},
		{"device read error", readErr, "backlight device"},
		{"device write error", writeErr, "backlight device"},
		{"wrapped device error", commonserrors.WithStackTrace(readErr), "backlight device"},
		{"unknown error", errors.New("what"), "unexpected"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Contains(t, friendlyMessage(tc.err), tc.contains)
		})
	}
}
