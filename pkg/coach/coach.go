// Package coach holds the Coach components built by the cruddemo injector.
//
// Every coach prints a line when it is constructed and implements
// [Lifecycle], whose hooks the injector calls after construction and at
// teardown. DailyWorkout is pure: it returns the same string on every call.
package coach

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrUnknownCoach is returned by New for a name with no registered coach.
var ErrUnknownCoach = errors.New("coach: unknown coach")

// Primary is the coach used when none is named.
const Primary = "baseball"

// Coach hands out the workout of the day.
type Coach interface {
	DailyWorkout() string
}

// Lifecycle hooks run by the injector. Startup runs once the coach is
// constructed, Cleanup runs when the application shuts down.
type Lifecycle interface {
	Startup()
	Cleanup()
}

var constructors = map[string]func(io.Writer) Coach{
	"baseball": func(out io.Writer) Coach { return NewBaseballCoach(out) },
	"cricket":  func(out io.Writer) Coach { return NewCricketCoach(out) },
	"tennis":   func(out io.Writer) Coach { return NewTennisCoach(out) },
	"track":    func(out io.Writer) Coach { return NewTrackCoach(out) },
}

// New constructs the coach registered under name, writing its lifecycle
// lines to out. An empty name selects Primary.
func New(name string, out io.Writer) (Coach, error) {
	if name == "" {
		name = Primary
	}
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownCoach, name, Names())
	}
	return ctor(out), nil
}

// Names lists the registered coach names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hooks prints the lifecycle lines for one coach type.
type hooks struct {
	out  io.Writer
	name string
}

func newHooks(out io.Writer, name string) hooks {
	if out == nil {
		out = io.Discard
	}
	h := hooks{out: out, name: name}
	fmt.Fprintf(h.out, "In constructor: %s\n", h.name)
	return h
}

func (h hooks) Startup() {
	fmt.Fprintf(h.out, "In Startup(): %s\n", h.name)
}

func (h hooks) Cleanup() {
	fmt.Fprintf(h.out, "In Cleanup(): %s\n", h.name)
}
