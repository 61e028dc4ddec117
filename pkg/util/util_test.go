package util

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		x        float64
		decimals int
		want     float64
	}{
		{29.2401, 2, 29.24},
		{5.848, 2, 5.85},
		{1.0, 2, 1.0},
		{-3.456, 2, -3.46},
		{123.456, 0, 123},
	}

	for _, test := range tests {
		got := Round(test.x, test.decimals)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Round(%g, %d): got %g, want %g", test.x, test.decimals, got, test.want)
		}
	}
}

func TestTimeToSteps(t *testing.T) {
	tests := []struct {
		duration string
		timestep float64
		want     float64
	}{
		{"50ps", 2, 25000},
		{"2ns", 2, 1000000},
		{" 10ps ", 2, 5000},
		{"3ps", 2, 1500},
		{"1ps", 3, 1000. / 3.},
		{"0", 2, 0},
	}

	for _, test := range tests {
		got, err := TimeToSteps(test.duration, test.timestep)
		if err != nil {
			t.Fatalf("TimeToSteps(%q, %g): %v", test.duration, test.timestep, err)
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("TimeToSteps(%q, %g): got %g, want %g",
				test.duration, test.timestep, got, test.want)
		}
	}
}

func TestTimeToStepsBadFormat(t *testing.T) {
	for _, duration := range []string{"10", "10fs", "", "ps", "2.5ps"} {
		_, err := TimeToSteps(duration, 2)
		if err == nil {
			t.Errorf("TimeToSteps(%q, 2): expected an error, got nil", duration)
		}
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dat")

	s := struct {
		FileIn string `toml:"test.file_in"`
		Steps  int    `toml:"test.steps"`
	}{"traj.lammpstrj", 500}

	f, err := Write(path, &s)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	f.WriteString("body\n")
	f.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)

	for _, want := range []string{"Date: ", "traj.lammpstrj", "body\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("Write output does not contain %q:\n%s", want, out)
		}
	}
}
