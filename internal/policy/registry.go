package policy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/linesim/internal/lines"
)

const (
	NameMove   = "move"
	NameSweep  = "sweep"
	NameExtend = "extend"
)

var ErrUnknownPolicy = errors.New("unknown policy")

// Params carries the tunables of every policy; each constructor reads the
// fields it needs.
type Params struct {
	Direction Direction
	Threshold uint8
	Step      float32
	MaxStep   int
}

func DefaultParams() Params {
	return Params{
		Direction: Up,
		Threshold: DefaultThreshold,
		Step:      DefaultSweepStep,
		MaxStep:   DefaultMaxStep,
	}
}

var constructors = map[string]func(Params) lines.Policy{
	NameMove:   func(Params) lines.Policy { return NewBounceMove() },
	NameSweep:  func(p Params) lines.Policy { return NewSweepRotate(p.Direction, p.Threshold, p.Step) },
	NameExtend: func(p Params) lines.Policy { return NewPulseExtend(p.MaxStep) },
}

var aliases = map[string]string{
	"bounce": NameMove,
	"pulse":  NameExtend,
	"rotate": NameSweep,
}

// Parse resolves a policy name or alias to its canonical name.
func Parse(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[n]; ok {
		n = canonical
	}
	if _, ok := constructors[n]; !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownPolicy, name, strings.Join(Names(), ", "))
	}
	return n, nil
}

func New(name string, p Params) (lines.Policy, error) {
	n, err := Parse(name)
	if err != nil {
		return nil, err
	}
	return constructors[n](p), nil
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
