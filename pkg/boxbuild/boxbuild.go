// Package boxbuild computes the geometry of a salt in water system so that a
// system builder like moltemplate can place the molecules on a cubic lattice.
// It does not write or run any builder file itself: it only produces the
// numbers such a file needs.
package boxbuild

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/AJZein/Protein-Optimisation/pkg/lattice"
	"github.com/AJZein/Protein-Optimisation/pkg/util"

	"github.com/pelletier/go-toml"
)

// Type is the type of task.
var Type = "box_build"

// Density is the volume occupied by one water molecule, in cubic Angstroms.
// It is used to size the box when no side length is given.
const Density = 25

// BoxBuild is a structure containing the parameters that can be parsed from
// a TOML configuration file. This structure can be instanced through the New
// method. NumWater and NumSalt are the wanted molecule counts; the built
// system approximates them with near cubic integer lattices, so the achieved
// counts can differ (for counts below 11 they are exact). Grid, SaltTrans and
// SaltSep are optional: reasonable values are derived when they are zero.
// Equil and Run are optional durations like "50ps" or "2ns", converted into
// step counts with Timestep (femtoseconds, 2 when unset).
type BoxBuild struct {
	FileOut string `toml:"box_build.file_out"`

	NumWater int `toml:"box_build.num_water"`
	NumSalt  int `toml:"box_build.num_salt"`

	Grid      float64 `toml:"box_build.grid"`
	SaltTrans float64 `toml:"box_build.salt_trans"`
	SaltSep   float64 `toml:"box_build.salt_sep"`

	Equil    string  `toml:"box_build.equil"`
	Run      string  `toml:"box_build.run"`
	Timestep float64 `toml:"box_build.timestep"`
}

// Plan is the geometry computed for one system. Factors are the number of
// molecules along each axis, so the achieved molecule counts are the products
// of the factors. Err is the total number of molecules the system is off by.
type Plan struct {
	WaterFactors [3]int
	SaltFactors  [3]int

	NumWater int
	NumSalt  int
	Err      int

	Grid         float64
	WaterSpacing [3]float64
	SaltSpacing  [3]float64

	NaMove float64
	ClMove float64

	EquilSteps float64
	RunSteps   float64
}

// New returns an instance of the BoxBuild structure. It reads and parses
// the configuration file given in argument. The file must be a TOML file.
func New(path string) (*BoxBuild, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b BoxBuild
	dec := toml.NewDecoder(f)
	err = dec.Decode(&b)
	if err != nil {
		return nil, err
	}

	if b.NumWater < 1 || b.NumSalt < 1 {
		return nil, errors.New("NumWater and NumSalt must be greater or equal to 1")
	}

	if b.Timestep < 0 {
		return nil, errors.New("Timestep must be positive")
	}
	if b.Timestep == 0 {
		b.Timestep = 2
	}

	return &b, nil
}

// Plan computes the geometry for the configured molecule counts.
func (b *BoxBuild) Plan() (Plan, error) {
	var p Plan
	var err error

	var waterErr, saltErr int
	p.WaterFactors, waterErr, err = lattice.Decompose(b.NumWater)
	if err != nil {
		return Plan{}, fmt.Errorf("Decompose (water): %w", err)
	}
	p.SaltFactors, saltErr, err = lattice.Decompose(b.NumSalt)
	if err != nil {
		return Plan{}, fmt.Errorf("Decompose (salt): %w", err)
	}

	p.NumWater = p.WaterFactors[0] * p.WaterFactors[1] * p.WaterFactors[2]
	p.NumSalt = p.SaltFactors[0] * p.SaltFactors[1] * p.SaltFactors[2]
	p.Err = waterErr + saltErr

	p.Grid = b.Grid
	if p.Grid == 0 {
		p.Grid = util.Round(math.Cbrt(Density*float64(p.NumWater)), 2)
	}

	// Spacings so that the water and salt lattices span the whole box.
	for k := 0; k < 3; k++ {
		p.WaterSpacing[k] = util.Round(p.Grid/float64(p.WaterFactors[k]), 2)
		p.SaltSpacing[k] = util.Round(p.Grid/float64(p.SaltFactors[k]), 2)
	}

	// The salt lattice is shifted so the ions don't overlap with the water,
	// and Na and Cl are kept apart from each other along the box diagonal.
	trans := b.SaltTrans
	if trans == 0 {
		trans = p.WaterSpacing[0] / 2
	}
	sep := b.SaltSep
	if sep != 0 {
		sep = util.Round(sep/math.Sqrt(3), 2)
	} else {
		sep = p.WaterSpacing[0]
	}

	p.NaMove = util.Round(trans, 2)
	p.ClMove = util.Round(trans+sep, 2)

	if b.Equil != "" {
		p.EquilSteps, err = util.TimeToSteps(b.Equil, b.Timestep)
		if err != nil {
			return Plan{}, fmt.Errorf("TimeToSteps (equil): %w", err)
		}
	}
	if b.Run != "" {
		p.RunSteps, err = util.TimeToSteps(b.Run, b.Timestep)
		if err != nil {
			return Plan{}, fmt.Errorf("TimeToSteps (run): %w", err)
		}
	}

	return p, nil
}

// Start performs the task. It computes the plan and writes it into the
// output file. It is a thread blocking method.
func (b *BoxBuild) Start() error {
	p, err := b.Plan()
	if err != nil {
		return fmt.Errorf("Plan: %w", err)
	}

	out, err := util.Write(b.FileOut, b)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	defer out.Close()

	fmt.Fprintf(out, "water %d (%d %d %d)\n", p.NumWater,
		p.WaterFactors[0], p.WaterFactors[1], p.WaterFactors[2])
	fmt.Fprintf(out, "salt %d (%d %d %d)\n", p.NumSalt,
		p.SaltFactors[0], p.SaltFactors[1], p.SaltFactors[2])
	fmt.Fprintf(out, "build error of %d molecules\n\n", p.Err)

	for _, axis := range [3]string{"x", "y", "z"} {
		fmt.Fprintf(out, "0 %g %slo %shi\n", p.Grid, axis, axis)
	}

	fmt.Fprintf(out, "\nwater spacing %g %g %g\n",
		p.WaterSpacing[0], p.WaterSpacing[1], p.WaterSpacing[2])
	fmt.Fprintf(out, "salt spacing %g %g %g\n",
		p.SaltSpacing[0], p.SaltSpacing[1], p.SaltSpacing[2])
	fmt.Fprintf(out, "na move %g\ncl move %g\n", p.NaMove, p.ClMove)

	if b.Equil != "" || b.Run != "" {
		fmt.Fprintf(out, "\nequil steps %g\nrun steps %g\n", p.EquilSteps, p.RunSteps)
	}

	return nil
}
