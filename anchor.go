package board

// Anchor names a binding point on an entity's bounds. Connector endpoints
// attach to anchors; re-routing resolves the anchor against the entity's
// current bounds on every update.
type Anchor string

// Anchor positions.
const (
	AnchorTop    Anchor = "top"
	AnchorRight  Anchor = "right"
	AnchorBottom Anchor = "bottom"
	AnchorLeft   Anchor = "left"
	AnchorCenter Anchor = "center"
)

// EdgeAnchors returns the four edge anchors in clockwise order starting at
// the top. These are the anchors shown as hover dots; AnchorCenter is the
// implicit binding used when a connector is dropped on an entity body.
func EdgeAnchors() [4]Anchor {
	return [4]Anchor{AnchorTop, AnchorRight, AnchorBottom, AnchorLeft}
}

// Valid reports whether a names a known anchor.
func (a Anchor) Valid() bool {
	switch a {
	case AnchorTop, AnchorRight, AnchorBottom, AnchorLeft, AnchorCenter:
		return true
	}
	return false
}

// AnchorPoint resolves an anchor to a world-space point on the given
// bounds. Unknown anchors resolve to the center.
func AnchorPoint(r Rect, a Anchor) Point {
	switch a {
	case AnchorTop:
		return Point{X: r.X + r.W/2, Y: r.Y}
	case AnchorRight:
		return Point{X: r.X + r.W, Y: r.Y + r.H/2}
	case AnchorBottom:
		return Point{X: r.X + r.W/2, Y: r.Y + r.H}
	case AnchorLeft:
		return Point{X: r.X, Y: r.Y + r.H/2}
	default:
		return r.Center()
	}
}

// NearestAnchor returns the anchor of r closest to p, considering the four
// edge anchors and the center.
func NearestAnchor(r Rect, p Point) Anchor {
	best := AnchorCenter
	bestDist := p.Distance(r.Center())
	for _, a := range EdgeAnchors() {
		if d := p.Distance(AnchorPoint(r, a)); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}
