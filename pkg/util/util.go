// Package util contains some methods that can be used by every other package.
package util

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml"
)

// Write writes the output file according to a specific scheme. It writes the
// date, parses the structure in a TOML format and writes it. This method
// returns the file for further writing. It must be closed at the end of the
// task.
func Write(path string, structure interface{}) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(f, "Date: %v\n", time.Now().Format("2006-01-02 15:04:05 -0700 MST"))

	enc := toml.NewEncoder(f)
	err = enc.Encode(structure)
	if err != nil {
		return nil, err
	}

	f.Write([]byte{'\n'})
	return f, nil
}

// Round returns x rounded to the given number of decimals.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// TimeToSteps computes how many steps are in the given duration. The duration
// must be an integer immediately followed by either "ps" or "ns" (or the bare
// string "0"), and the timestep is in femtoseconds. The result is returned as
// a float so a non integer timestep keeps its fractional steps; it is up to
// the caller to round it.
func TimeToSteps(duration string, timestep float64) (float64, error) {
	duration = strings.TrimSpace(duration)

	var unit float64
	switch {
	case strings.Contains(duration, "ps"):
		duration = strings.Split(duration, "ps")[0]
		unit = 1e3
	case strings.Contains(duration, "ns"):
		duration = strings.Split(duration, "ns")[0]
		unit = 1e6
	case duration == "0":
		return 0, nil
	default:
		return 0, errors.New("incorrect format, specify an integer immediately followed by either 'ps' or 'ns'")
	}

	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0, errors.New("incorrect format, specify an integer immediately followed by either 'ps' or 'ns'")
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("incorrect format, %q is not an integer", fields[0])
	}

	return float64(n) * unit / timestep, nil
}
