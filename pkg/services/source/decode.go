package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
)

// DecodeDataset reads a JSON dataset in the sellers/products/purchase_records
// layout. Unknown fields are ignored. A collection that is not a JSON array
// is reported as *sales.InvalidInputError, the same as a dataset that fails
// validation.
func DecodeDataset(r io.Reader) (*domain.Dataset, error) {
	var data api.Dataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			switch typeErr.Field {
			case "sellers", "products", "purchase_records":
				err = &sales.InvalidInputError{Reason: typeErr.Field + " must be a list"}
			}
		}
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return adapters.MapApiDatasetToDomain(data), nil
}
