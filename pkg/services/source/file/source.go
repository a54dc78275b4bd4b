package file

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/rs/zerolog"
)

type fileSource struct {
	path string
}

// Factory treats configPath as the JSON dataset file itself.
func Factory(_ context.Context, configPath string) (source.Source, error) {
	if configPath == "" {
		return nil, fmt.Errorf("dataset file path is required")
	}
	return &fileSource{path: configPath}, nil
}

func (s *fileSource) Load(ctx context.Context) (*domain.Dataset, error) {
	logger := zerolog.Ctx(ctx)

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Str("path", s.path).Msg("failed to close dataset file")
		}
	}()

	data, err := source.DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	logger.Debug().Str("path", s.path).Msg("dataset file loaded")
	return data, nil
}

func (s *fileSource) Close() error {
	return nil
}
