package cfg

import (
	"fmt"

	"github.com/AJZein/Protein-Optimisation/pkg/boxbuild"
	"github.com/AJZein/Protein-Optimisation/pkg/composition"
)

// Task is an interface that only contains one method: Start. Every task must
// have a Start method that will launch the task. It must be a thread blocking
// method.
type Task interface {
	Start() error
}

// Launch launchs a specific task. It is a thread blocking method. The
// parameters required to launch the task must be in a file.
func Launch(name string, path string) error {
	var (
		err error
		tsk Task
	)

	switch name {
	case boxbuild.Type:
		tsk, err = boxbuild.New(path)
	case composition.Type:
		tsk, err = composition.New(path)
	default:
		return fmt.Errorf("task `%s` doesn't exist", name)
	}

	if err != nil {
		return fmt.Errorf("%s: New: %w", name, err)
	}

	err = tsk.Start()
	if err != nil {
		return fmt.Errorf("%s: Start: %w", name, err)
	}

	return nil
}
