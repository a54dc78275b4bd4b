package sales

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// Validate checks the dataset shape and the presence of both policies. It runs
// before any aggregation so a bad batch never yields a partial report.
func Validate(data *domain.Dataset, policies Policies) error {
	if data == nil {
		return &InvalidInputError{Reason: "dataset is missing"}
	}

	collections := []struct {
		name  string
		isNil bool
		size  int
	}{
		{"sellers", data.Sellers == nil, len(data.Sellers)},
		{"products", data.Products == nil, len(data.Products)},
		{"purchase_records", data.PurchaseRecords == nil, len(data.PurchaseRecords)},
	}
	for _, c := range collections {
		if c.isNil {
			return &InvalidInputError{Reason: c.name + " must be a list"}
		}
		if c.size == 0 {
			return &InvalidInputError{Reason: c.name + " must not be empty"}
		}
	}

	if policies.Revenue == nil {
		return &MissingPolicyError{Policy: "revenue"}
	}
	if policies.Bonus == nil {
		return &MissingPolicyError{Policy: "bonus"}
	}

	return nil
}
