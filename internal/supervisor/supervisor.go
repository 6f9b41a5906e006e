package supervisor

import (
	"errors"
	"fmt"
	"io"

	"github.com/LimitlessOS-official/Limitless-sub010/internal/persona"
	"github.com/LimitlessOS-official/Limitless-sub010/internal/shared/status"
)

const (
	// MaxServices bounds the service table.
	MaxServices = 64

	// MaxDependencies bounds the dependency list of a single service.
	MaxDependencies = 8
)

// State represents service lifecycle states.
type State string

const (
	StateStopped  State = "stopped"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateFailed   State = "failed"
)

// ServiceSpec declares a supervised service.
type ServiceSpec struct {
	// Name identifies the service, unique within a supervisor.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Path is the target resolved and launched through the registry.
	Path string `json:"path" yaml:"path" toml:"path"`

	// Deps names services that must be running first.
	Deps []string `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty"`

	// RestartOnCrash is carried for forward compatibility. The
	// supervisor performs no crash detection and does not act on it.
	RestartOnCrash bool `json:"restart_on_crash,omitempty" yaml:"restart_on_crash,omitempty" toml:"restart_on_crash,omitempty"`
}

// ServiceStatus is a point-in-time view of one service entry.
type ServiceStatus struct {
	Name  string `json:"name"`
	State State  `json:"state"`
}

// Launcher is the registry surface the supervisor drives. Satisfied by
// *persona.Registry.
type Launcher interface {
	Resolve(path string) (int64, error)
	Launch(id int64, path string) (*persona.Handle, error)
	Close(h *persona.Handle) error
}

type record struct {
	spec   ServiceSpec
	state  State
	handle *persona.Handle
}

// Supervisor owns the service table and drives registry launches.
type Supervisor struct {
	registry Launcher
	byName   map[string]*record
	order    []string
}

// New creates an empty supervisor over the given registry.
func New(registry Launcher) *Supervisor {
	return &Supervisor{
		registry: registry,
		byName:   make(map[string]*record),
	}
}

// Register appends service specs to the table. Every entry starts
// Stopped. On a capacity or validation error the specs added so far
// remain in place; callers should treat a partial registration as
// fatal. Dependency names are checked at start time, not here.
func (s *Supervisor) Register(specs []ServiceSpec) error {
	if specs == nil {
		return status.ErrInvalidArgument
	}
	for _, spec := range specs {
		if len(s.order) >= MaxServices {
			return status.ErrCapacityExceeded
		}
		if spec.Name == "" || len(spec.Deps) > MaxDependencies {
			return status.ErrInvalidArgument
		}
		if _, dup := s.byName[spec.Name]; dup {
			return fmt.Errorf("service %q: %w", spec.Name, status.ErrInvalidArgument)
		}
		s.byName[spec.Name] = &record{spec: spec, state: StateStopped}
		s.order = append(s.order, spec.Name)
	}
	return nil
}

// StartAll starts every service in registration order and returns the
// first error encountered. Services already started stay running; the
// caller drives StopAll on the error path.
func (s *Supervisor) StartAll() error {
	for _, name := range s.order {
		if err := s.startOne(s.byName[name]); err != nil {
			return err
		}
	}
	return nil
}

// startOne launches a single service, recursing into its dependencies
// first. The Starting state doubles as the on-stack marker of the DFS:
// seeing it again through recursion means the graph has a cycle. A
// third color would be needed only if re-entry after failure were ever
// allowed.
func (s *Supervisor) startOne(rec *record) error {
	switch rec.state {
	case StateRunning:
		return nil
	case StateStarting:
		rec.state = StateFailed
		return status.ErrCycleDetected
	}
	rec.state = StateStarting

	for _, dep := range rec.spec.Deps {
		target, ok := s.byName[dep]
		if !ok {
			rec.state = StateFailed
			return status.ErrMissingDependency
		}
		if err := s.startOne(target); err != nil {
			rec.state = StateFailed
			return err
		}
	}

	id, err := s.registry.Resolve(rec.spec.Path)
	if err != nil {
		rec.state = StateFailed
		if errors.Is(err, status.ErrNotFound) {
			return status.ErrNoHandler
		}
		return err
	}
	h, err := s.registry.Launch(id, rec.spec.Path)
	if err != nil {
		rec.state = StateFailed
		return err
	}

	rec.handle = h
	rec.state = StateRunning
	return nil
}

// StopAll closes every held handle in registration order, ignoring
// close statuses, and returns all entries to Stopped. Idempotent; safe
// after a partial StartAll.
func (s *Supervisor) StopAll() {
	for _, name := range s.order {
		rec := s.byName[name]
		if rec.handle != nil {
			_ = s.registry.Close(rec.handle)
			rec.handle = nil
		}
		rec.state = StateStopped
	}
}

// Status returns a snapshot of every entry in registration order.
func (s *Supervisor) Status() []ServiceStatus {
	out := make([]ServiceStatus, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, ServiceStatus{Name: name, State: s.byName[name].state})
	}
	return out
}

// StatusDump writes one "<name>: <state>" line per entry in
// registration order.
func (s *Supervisor) StatusDump(w io.Writer) {
	for _, name := range s.order {
		fmt.Fprintf(w, "%s: %s\n", name, s.byName[name].state)
	}
}
