package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/wanderer/internal/sim"
)

// ExportData is the self-contained JSON form of a run.
type ExportData struct {
	Metadata RunMetadata  `json:"metadata"`
	Trace    []sim.Sample `json:"trace"`
}

// Export writes a stored run as indented JSON.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}
	return ExportJSON(w, ExportData{Metadata: *meta, Trace: trace})
}

func ExportJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportFile is Export into a newly created file.
func (s *Store) ExportFile(path, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Export(f, runID); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
