package board

import "math"

// ModuleConnection is the registered name of the connection module.
const ModuleConnection = "connection"

// Connection keeps connector endpoints attached to the entities they are
// bound to. Whenever a non-connector entity changes shape or position,
// every connector referencing it is re-routed in the same synchronous
// update cycle: the bound endpoint snaps to the entity's current anchor
// point, and the connector's transform follows the new endpoint bounding
// box.
type Connection struct {
	host *Host
	reg  *Registry
	sub  *Subscription
}

// NewConnection returns the connection module. The registry resolves the
// current bounds of updated entities.
func NewConnection(reg *Registry) *Connection {
	return &Connection{reg: reg}
}

// Name implements Module.
func (c *Connection) Name() string { return ModuleConnection }

// Init implements Module.
func (c *Connection) Init(h *Host) error {
	c.host = h
	c.sub = h.Bus.Subscribe(EventEntityUpdated, c.onUpdated)
	return nil
}

// Destroy implements Module.
func (c *Connection) Destroy() {
	if c.sub != nil {
		c.sub.Cancel()
		c.sub = nil
	}
	c.host = nil
}

func (c *Connection) onUpdated(ev Event) {
	ch, ok := ev.Data.(EntityChange)
	if !ok || ch.New == nil {
		return
	}
	// Connector updates are ignored: re-routing a connector emits its own
	// update event, and reacting to it would loop.
	if ch.New.Type.IsConnector() {
		return
	}
	// Metadata and style updates do not move anchors.
	if ch.Old != nil && c.reg.Bounds(ch.Old) == c.reg.Bounds(ch.New) {
		return
	}
	c.reroute(ch.New.ID, c.reg.Bounds(ch.New))
}

func (c *Connection) reroute(id string, bounds Rect) {
	for _, e := range c.host.Store.All() {
		if !e.Type.IsConnector() {
			continue
		}
		p, ok := e.Props.(ConnectorProps)
		if !ok {
			continue
		}
		x1, y1, x2, y2 := p.X1, p.Y1, p.X2, p.Y2
		if p.StartConnectedID == id {
			pt := AnchorPoint(bounds, p.StartAnchor)
			x1, y1 = pt.X, pt.Y
		}
		if p.EndConnectedID == id {
			pt := AnchorPoint(bounds, p.EndAnchor)
			x2, y2 = pt.X, pt.Y
		}
		if x1 == p.X1 && y1 == p.Y1 && x2 == p.X2 && y2 == p.Y2 {
			continue
		}
		tx := math.Min(x1, x2)
		ty := math.Min(y1, y2)
		c.host.Store.Update(e.ID, Patch{
			Transform: &TransformPatch{X: &tx, Y: &ty},
			Props:     map[string]any{"x1": x1, "y1": y1, "x2": x2, "y2": y2},
		})
	}
}
