package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/board"
)

// loadScene reads a scene file and returns it in the JSON record form the
// engine imports. YAML documents are converted; records without an id get a
// generated one and records without a visible field default to visible,
// which keeps hand-written scenes terse.
func loadScene(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlScene(data)
	}
	return data, nil
}

func yamlScene(data []byte) ([]byte, error) {
	var records []map[string]any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse yaml scene: %w", err)
	}
	for _, rec := range records {
		if id, _ := rec["id"].(string); id == "" {
			rec["id"] = uuid.Must(uuid.NewV7()).String()
		}
		if _, ok := rec["visible"]; !ok {
			rec["visible"] = true
		}
	}
	return json.Marshal(records)
}

// openScene builds an engine of the given size and imports the scene file.
func openScene(path string, width, height int) (*board.Engine, error) {
	data, err := loadScene(path)
	if err != nil {
		return nil, err
	}
	eng, err := board.New(width, height)
	if err != nil {
		return nil, err
	}
	if err := eng.Import(data); err != nil {
		eng.Close()
		return nil, err
	}
	return eng, nil
}

// fitCamera centers the camera on the scene content, choosing the largest
// zoom, capped at 1, that keeps everything visible with a margin.
func fitCamera(eng *board.Engine, margin float64) {
	entities := eng.Store().All()
	if len(entities) == 0 {
		return
	}
	bounds := eng.Registry().Bounds(entities[0])
	for _, e := range entities[1:] {
		bounds = bounds.Union(eng.Registry().Bounds(e))
	}
	bounds = bounds.Expand(margin)

	cam := eng.Camera()
	cam.Zoom = min(float64(eng.Width())/bounds.W, float64(eng.Height())/bounds.H, 1)
	if cam.Zoom < board.MinZoom {
		cam.Zoom = board.MinZoom
	}
	center := bounds.Center()
	cam.X = center.X - float64(eng.Width())/cam.Zoom/2
	cam.Y = center.Y - float64(eng.Height())/cam.Zoom/2
	eng.SetCamera(cam)
}
