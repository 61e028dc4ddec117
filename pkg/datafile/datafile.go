// Package datafile reads a LAMMPS data file, the file usually produced by
// moltemplate and read back by LAMMPS through read_data.
package datafile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Column indices of an Atoms section written in the "full" atom style:
// atom id, molecule tag, atom type, charge, x, y, z and optionally the
// periodic image flags nx, ny, nz.
const (
	ColID = iota
	ColMol
	ColType
	ColQ
	ColX
	ColY
	ColZ
)

// ReadAtoms gets the entire Atoms section from a LAMMPS data file and puts it
// into a matrix, one row per atom and the columns as written in the file.
// Comments starting with # are stripped from the rows. Every row must have
// the same number of columns; a truncated or malformed section is an error
// and no partial matrix is returned.
func ReadAtoms(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	atoms := -1
	for _, l := range lines {
		if strings.Contains(l, "atoms") {
			fields := strings.Fields(l)
			atoms, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("cannot read the number of atoms: %w", err)
			}
			break
		}
	}
	if atoms < 0 {
		return nil, errors.New("no atoms count in the header")
	}
	if atoms == 0 {
		return nil, errors.New("the data file reports no atoms")
	}

	for i, l := range lines {
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(l)), "atoms") {
			continue
		}

		// The section header is followed by one blank line.
		if i+2+atoms > len(lines) {
			return nil, fmt.Errorf("Atoms section is truncated: %d atoms expected", atoms)
		}

		var data []float64
		cols := 0
		for j := 0; j < atoms; j++ {
			row := lines[i+2+j]
			if k := strings.IndexByte(row, '#'); k >= 0 {
				row = row[:k]
			}

			fields := strings.Fields(row)
			if cols == 0 {
				cols = len(fields)
			} else if len(fields) != cols {
				return nil, fmt.Errorf("number of columns don't match: %d (expected %d, atom %d)",
					len(fields), cols, j+1)
			}

			for _, field := range fields {
				v, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf("atom %d: %w", j+1, err)
				}
				data = append(data, v)
			}
		}

		if cols < ColZ+1 {
			return nil, fmt.Errorf("not enough columns (at least %d, got %d)", ColZ+1, cols)
		}

		return mat.NewDense(atoms, cols, data), nil
	}

	return nil, errors.New("no Atoms section in the data file")
}

// Types returns the atom type column as integers.
func Types(m *mat.Dense) []int {
	rows, _ := m.Dims()
	types := make([]int, rows)
	for i := 0; i < rows; i++ {
		types[i] = int(m.At(i, ColType))
	}
	return types
}

// Charges returns the charge column.
func Charges(m *mat.Dense) []float64 {
	return mat.Col(nil, ColQ, m)
}

// Coords returns a view of the x, y and z columns. The view shares its
// backing data with m.
func Coords(m *mat.Dense) mat.Matrix {
	rows, _ := m.Dims()
	return m.Slice(0, rows, ColX, ColZ+1)
}
