// Package composition reports what a LAMMPS data file contains: how many
// atoms of each type, the total charge and the extent of the coordinates. It
// is a quick check that a built system holds the expected molecules before
// spending hours simulating it.
package composition

import (
	"fmt"
	"os"
	"sort"

	"github.com/AJZein/Protein-Optimisation/pkg/datafile"
	"github.com/AJZein/Protein-Optimisation/pkg/util"

	"github.com/pelletier/go-toml"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Type is the type of task.
var Type = "composition"

// Composition is a structure containing the parameters that can be parsed
// from a TOML configuration file. This structure can be instanced through the
// New method. FileIn is a LAMMPS data file with an Atoms section in the
// "full" style.
type Composition struct {
	FileIn  string `toml:"composition.file_in"`
	FileOut string `toml:"composition.file_out"`
}

// New returns an instance of the Composition structure. It reads and parses
// the configuration file given in argument. The file must be a TOML file.
func New(path string) (*Composition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Composition
	dec := toml.NewDecoder(f)
	err = dec.Decode(&c)
	if err != nil {
		return nil, err
	}

	if c.FileIn == "" || c.FileOut == "" {
		return nil, fmt.Errorf("FileIn and FileOut must be set")
	}

	return &c, nil
}

// Start performs the task. It is a thread blocking method.
func (c *Composition) Start() error {
	m, err := datafile.ReadAtoms(c.FileIn)
	if err != nil {
		return fmt.Errorf("ReadAtoms: %w", err)
	}

	out, err := util.Write(c.FileOut, c)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	defer out.Close()

	rows, _ := m.Dims()
	types := datafile.Types(m)
	charges := datafile.Charges(m)

	count := make(map[int]int)
	charge := make(map[int]float64)
	for k, typ := range types {
		count[typ]++
		charge[typ] += charges[k]
	}

	order := make([]int, 0, len(count))
	for typ := range count {
		order = append(order, typ)
	}
	sort.Ints(order)

	fmt.Fprintf(out, "atoms %d\n", rows)
	fmt.Fprintf(out, "charge %g\n\n", floats.Sum(charges))
	for _, typ := range order {
		fmt.Fprintf(out, "type %d: %d atoms, charge %g\n", typ, count[typ], charge[typ])
	}

	out.WriteString("\n")
	for k, axis := range [3]string{"x", "y", "z"} {
		col := mat.Col(nil, datafile.ColX+k, m)
		fmt.Fprintf(out, "%s %g %g\n", axis, floats.Min(col), floats.Max(col))
	}

	return nil
}
