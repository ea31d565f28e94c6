package board

// EventKind identifies a bus event. Kinds use dotted lowercase names so a
// host logger can filter by prefix.
type EventKind string

// Engine events. Entity lifecycle events fire synchronously inside the
// store mutation that caused them.
const (
	// EventEntityCreated carries the new *Entity snapshot.
	EventEntityCreated EventKind = "entity.created"
	// EventEntityUpdated carries an EntityChange with before and after
	// snapshots.
	EventEntityUpdated EventKind = "entity.updated"
	// EventEntityDeleted carries the final *Entity snapshot.
	EventEntityDeleted EventKind = "entity.deleted"
	// EventSelectionChanged carries the ordered selected id list ([]string).
	EventSelectionChanged EventKind = "selection.changed"
	// EventToolChanged carries the active Tool.
	EventToolChanged EventKind = "tool.changed"
	// EventZoomChanged carries the camera zoom (float64).
	EventZoomChanged EventKind = "camera.zoom"
	// EventSceneChanged signals a bulk scene replacement (import, LoadAll).
	// It carries no data.
	EventSceneChanged EventKind = "scene.changed"
	// EventTextEditRequested carries a TextEditRequest. The host is expected
	// to present its text editing overlay and commit through the store.
	EventTextEditRequested EventKind = "edit.text"
	// EventImageUploadRequested carries an ImageUploadRequest. The host is
	// expected to pick an image and call Engine.AddImage.
	EventImageUploadRequested EventKind = "edit.image"
)

// Event is the unit of bus delivery.
type Event struct {
	Kind EventKind
	Data any
}

// EntityChange is the payload of EventEntityUpdated. Both snapshots are
// detached copies; listeners may retain them.
type EntityChange struct {
	Old *Entity
	New *Entity
}

// TextEditRequest is the payload of EventTextEditRequested.
type TextEditRequest struct {
	EntityID string
	Text     string
	FontSize float64
}

// ImageUploadRequest is the payload of EventImageUploadRequested. FrameID
// is empty when the image should land in the viewport rather than inside a
// frame.
type ImageUploadRequest struct {
	FrameID string
}
