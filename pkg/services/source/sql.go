package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	sqlstore "github.com/de-tools/sales-atlas/pkg/store/sql"
	"github.com/rs/zerolog"
)

type sqlSource struct {
	name  string
	db    *sql.DB
	store sqlstore.DatasetStore
}

// NewSQLSource reads the dataset through the shared SQL schema. The source
// owns db and closes it on Close.
func NewSQLSource(name string, db *sql.DB) Source {
	return &sqlSource{
		name:  name,
		db:    db,
		store: sqlstore.NewDatasetStore(db),
	}
}

func (s *sqlSource) Load(ctx context.Context) (*domain.Dataset, error) {
	logger := zerolog.Ctx(ctx).With().Str("source", s.name).Logger()

	sellers, err := s.store.ListSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	purchases, err := s.store.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}

	data := adapters.MapStoreRowsToDomainDataset(sellers, products, purchases)

	logger.Info().
		Int("sellers", len(data.Sellers)).
		Int("products", len(data.Products)).
		Int("purchase_records", len(data.PurchaseRecords)).
		Msg("dataset loaded")

	return data, nil
}

func (s *sqlSource) Close() error {
	return s.db.Close()
}
