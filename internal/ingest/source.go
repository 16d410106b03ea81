package ingest

import (
	"context"
	"fmt"
	"os"

	"spendlens/internal/port"
)

// Source yields the decoded document export for one ingestion run.
// An unreadable or unparsable source is fatal: the run never starts.
type Source interface {
	Load(ctx context.Context) ([]SourceDocument, error)
}

// FileSource loads the export from a local JSON file.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(_ context.Context) ([]SourceDocument, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading document export %s: %w", s.Path, err)
	}
	return DecodeDocuments(data)
}

// ObjectSource loads the export from object storage.
type ObjectSource struct {
	Storage port.ObjectStorage
	Key     string
}

func (s *ObjectSource) Load(ctx context.Context) ([]SourceDocument, error) {
	data, err := s.Storage.Download(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("downloading document export %s: %w", s.Key, err)
	}
	return DecodeDocuments(data)
}
