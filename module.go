package board

import (
	"fmt"
	"runtime/debug"
)

// Host is the slice of the engine a feature module may touch: the store and
// the bus. Modules react to events and mutate entities; they never draw or
// handle input directly.
type Host struct {
	Store *Store
	Bus   *Bus
}

// Module is a pluggable engine feature. Init runs once at registration and
// typically subscribes to bus events; Destroy runs at engine close in
// reverse registration order and must release those subscriptions.
type Module interface {
	Name() string
	Init(h *Host) error
	Destroy()
}

// Modules manages the registered feature modules with fault isolation: a
// module whose Init fails or panics is excluded and the rest of the engine
// keeps working.
type Modules struct {
	host   *Host
	order  []Module
	byName map[string]Module
}

// NewModules returns an empty module set bound to the host.
func NewModules(h *Host) *Modules {
	return &Modules{host: h, byName: make(map[string]Module)}
}

// Register initializes and installs a module. A module whose name is
// already registered is rejected with ErrModuleExists. An Init error or
// panic is logged and reported; the module is not installed.
func (m *Modules) Register(mod Module) error {
	name := mod.Name()
	if _, exists := m.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrModuleExists, name)
	}
	if err := m.initModule(mod); err != nil {
		Logger().Warn("module init failed", "module", name, "error", err)
		return err
	}
	m.byName[name] = mod
	m.order = append(m.order, mod)
	return nil
}

func (m *Modules) initModule(mod Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("module %q init panic: %v\n%s", mod.Name(), r, debug.Stack())
		}
	}()
	return mod.Init(m.host)
}

// Get returns a registered module by name.
func (m *Modules) Get(name string) (Module, bool) {
	mod, ok := m.byName[name]
	return mod, ok
}

// Close destroys all modules in reverse registration order. A Destroy panic
// is recovered so one module cannot block the teardown of the others.
func (m *Modules) Close() {
	for i := len(m.order) - 1; i >= 0; i-- {
		mod := m.order[i]
		func() {
			defer func() {
				if r := recover(); r != nil {
					Logger().Warn("module destroy panic", "module", mod.Name(), "panic", r)
				}
			}()
			mod.Destroy()
		}()
		delete(m.byName, mod.Name())
	}
	m.order = nil
}
