package storage

import (
	"encoding/json"
	"os"
)

type ExportData struct {
	Metadata *RecordingMetadata `json:"metadata"`
	Frames   []FrameRecord      `json:"frames"`
}

// ExportJSON writes a recording's metadata and frames to path.
func (s *Store) ExportJSON(id, path string) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(id)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Metadata: meta, Frames: frames})
}
