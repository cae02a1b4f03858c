// Package envutil reads typed configuration values from environment variables.
package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/githubnext/boomi-validate/pkg/console"
	"github.com/githubnext/boomi-validate/pkg/logger"
)

// GetIntFromEnv returns the integer value of envVar when it is set, parses,
// and lies within [minValue, maxValue]. Otherwise defaultValue is returned
// and a warning is printed for values that were set but rejected.
// log may be nil.
func GetIntFromEnv(envVar string, defaultValue, minValue, maxValue int, log *logger.Logger) int {
	raw := strings.TrimSpace(os.Getenv(envVar))
	if raw == "" {
		return defaultValue
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
			fmt.Sprintf("Invalid %s value %q (must be a number), using default %d", envVar, raw, defaultValue)))
		return defaultValue
	}

	if val < minValue || val > maxValue {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
			fmt.Sprintf("%s value %d is out of bounds (must be %d-%d), using default %d", envVar, val, minValue, maxValue, defaultValue)))
		return defaultValue
	}

	if log != nil {
		log.Printf("Using %s=%d", envVar, val)
	}
	return val
}

// GetBoolFromEnv interprets envVar with strconv.ParseBool. Unset or
// unparsable values yield defaultValue; log may be nil.
func GetBoolFromEnv(envVar string, defaultValue bool, log *logger.Logger) bool {
	raw := strings.TrimSpace(os.Getenv(envVar))
	if raw == "" {
		return defaultValue
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(
			fmt.Sprintf("Invalid %s value %q (must be true or false), using default %t", envVar, raw, defaultValue)))
		return defaultValue
	}

	if log != nil {
		log.Printf("Using %s=%t", envVar, val)
	}
	return val
}

// LookupPath returns the trimmed value of envVar and whether it names a path.
func LookupPath(envVar string) (string, bool) {
	val := strings.TrimSpace(os.Getenv(envVar))
	return val, val != ""
}
