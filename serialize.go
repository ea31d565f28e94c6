package board

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// entityRecord is the wire form of one entity. The field names are the
// stable scene document format; props hold the open map form produced by
// propsToMap.
type entityRecord struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Transform transformRecord `json:"transform"`
	Props     map[string]any  `json:"props"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
	Visible   bool            `json:"visible"`
	ParentID  string          `json:"parentId,omitempty"`
}

type transformRecord struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	Rotation float64 `json:"rotation"`
}

// Export serializes the scene as an ordered JSON array of entity records.
// The order is the store's insertion order, so a round trip through Import
// preserves z-order exactly.
func (e *Engine) Export() ([]byte, error) {
	entities := e.store.All()
	records := make([]entityRecord, 0, len(entities))
	for _, ent := range entities {
		records = append(records, entityRecord{
			ID:   ent.ID,
			Type: string(ent.Type),
			Transform: transformRecord{
				X:        ent.Transform.X,
				Y:        ent.Transform.Y,
				ScaleX:   ent.Transform.ScaleX,
				ScaleY:   ent.Transform.ScaleY,
				Rotation: ent.Transform.Rotation,
			},
			Props:    propsToMap(ent.Props),
			Metadata: ent.Metadata,
			Visible:  ent.Visible,
			ParentID: ent.ParentID,
		})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("board: export: %w", err)
	}
	return data, nil
}

// Import replaces the scene with the given document. The import is fail
// closed: any problem in the payload leaves the current scene, selection
// and camera untouched and returns an error wrapping ErrInvalidScene.
// On success the store is replaced atomically and a single
// EventSceneChanged fires; the selection resets.
func (e *Engine) Import(data []byte) error {
	if e.closed {
		return ErrClosed
	}
	entities, err := decodeScene(data)
	if err != nil {
		Logger().Warn("scene import rejected", "error", err)
		return err
	}
	e.store.LoadAll(entities)
	return nil
}

// decodeScene validates and decodes a scene document into entities,
// touching nothing on failure.
func decodeScene(data []byte) ([]*Entity, error) {
	// Shape checks before strict decoding keep the error messages close to
	// the actual defect: malformed bytes and wrong top-level types are
	// reported as such rather than as opaque unmarshal errors.
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidScene)
	}
	if !gjson.ParseBytes(data).IsArray() {
		return nil, fmt.Errorf("%w: top-level array required", ErrInvalidScene)
	}

	var records []entityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	entities := make([]*Entity, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: record %d: missing id", ErrInvalidScene, i)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("%w: record %d: duplicate id %q", ErrInvalidScene, i, rec.ID)
		}
		seen[rec.ID] = true

		kind := Kind(rec.Type)
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: record %d: unknown type %q", ErrInvalidScene, i, rec.Type)
		}
		props, err := decodeProps(kind, nil, rec.Props, true)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidScene, i, err)
		}

		// Absent scale components decode as zero; the stored default is 1.
		if rec.Transform.ScaleX == 0 {
			rec.Transform.ScaleX = 1
		}
		if rec.Transform.ScaleY == 0 {
			rec.Transform.ScaleY = 1
		}

		entities = append(entities, &Entity{
			ID:   rec.ID,
			Type: kind,
			Transform: Transform{
				X:        rec.Transform.X,
				Y:        rec.Transform.Y,
				ScaleX:   rec.Transform.ScaleX,
				ScaleY:   rec.Transform.ScaleY,
				Rotation: rec.Transform.Rotation,
			},
			Props:    props,
			Metadata: rec.Metadata,
			Visible:  rec.Visible,
			ParentID: rec.ParentID,
		})
	}
	return entities, nil
}
