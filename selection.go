package board

import "slices"

// ModuleSelection is the registered name of the selection module.
const ModuleSelection = "selection"

// Selection tracks the ordered set of selected entity ids and mirrors
// membership into each entity's metadata under MetaSelected, so that
// exported scenes and host-side listeners see selection state without
// consulting the module.
type Selection struct {
	host *Host
	ids  []string
	subs []*Subscription
}

// NewSelection returns the selection module.
func NewSelection() *Selection {
	return &Selection{}
}

// Name implements Module.
func (s *Selection) Name() string { return ModuleSelection }

// Init implements Module.
func (s *Selection) Init(h *Host) error {
	s.host = h
	s.subs = append(s.subs,
		h.Bus.Subscribe(EventEntityDeleted, s.onDeleted),
		h.Bus.Subscribe(EventSceneChanged, s.onSceneChanged),
	)
	return nil
}

// Destroy implements Module.
func (s *Selection) Destroy() {
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
	s.ids = nil
	s.host = nil
}

func (s *Selection) onDeleted(ev Event) {
	e, ok := ev.Data.(*Entity)
	if !ok {
		return
	}
	i := slices.Index(s.ids, e.ID)
	if i < 0 {
		return
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	s.emit()
}

// onSceneChanged drops the selection after a bulk scene replacement. The
// imported metadata is left untouched; the mirror converges on the next
// Select or Clear.
func (s *Selection) onSceneChanged(Event) {
	s.ids = nil
}

// Select adds the entity to the selection. With multi false the entity
// becomes the sole selection; with multi true it is toggled in or out of
// the current set. Unknown ids are a no-op. Emits EventSelectionChanged.
// All methods are no-ops on a nil or uninitialized module, so an engine
// built without default modules degrades instead of crashing.
func (s *Selection) Select(id string, multi bool) {
	if s == nil || s.host == nil {
		return
	}
	if _, ok := s.host.Store.Get(id); !ok {
		return
	}
	if !multi {
		if len(s.ids) == 1 && s.ids[0] == id {
			return
		}
		for _, prev := range s.ids {
			if prev != id {
				s.setMark(prev, false)
			}
		}
		s.ids = []string{id}
		s.setMark(id, true)
		s.emit()
		return
	}
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		s.setMark(id, false)
	} else {
		s.ids = append(s.ids, id)
		s.setMark(id, true)
	}
	s.emit()
}

// Clear empties the selection. Emits EventSelectionChanged when anything
// was selected.
func (s *Selection) Clear() {
	if s == nil || s.host == nil || len(s.ids) == 0 {
		return
	}
	for _, id := range s.ids {
		s.setMark(id, false)
	}
	s.ids = nil
	s.emit()
}

// Selected returns a copy of the ordered selected ids.
func (s *Selection) Selected() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.ids)
}

// IsSelected reports whether the id is selected.
func (s *Selection) IsSelected(id string) bool {
	return s != nil && slices.Contains(s.ids, id)
}

// DeleteSelected deletes every selected entity from the store.
func (s *Selection) DeleteSelected() {
	if s == nil || s.host == nil {
		return
	}
	for _, id := range slices.Clone(s.ids) {
		s.host.Store.Delete(id)
	}
}

// setMark writes the metadata mirror through the store so listeners see a
// normal entity update.
func (s *Selection) setMark(id string, selected bool) {
	s.host.Store.Update(id, Patch{Metadata: map[string]any{MetaSelected: selected}})
}

func (s *Selection) emit() {
	s.host.Bus.Emit(EventSelectionChanged, slices.Clone(s.ids))
}
