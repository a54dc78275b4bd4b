package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
)

// MapApiDatasetToDomain keeps absent collections nil so validation can tell
// them apart from empty ones.
func MapApiDatasetToDomain(data api.Dataset) *domain.Dataset {
	out := &domain.Dataset{}

	if data.Sellers != nil {
		out.Sellers = make([]domain.Seller, 0, len(data.Sellers))
		for _, s := range data.Sellers {
			out.Sellers = append(out.Sellers, domain.Seller{
				ID:        s.ID,
				FirstName: s.FirstName,
				LastName:  s.LastName,
			})
		}
	}

	if data.Products != nil {
		out.Products = make([]domain.Product, 0, len(data.Products))
		for _, p := range data.Products {
			out.Products = append(out.Products, domain.Product{
				SKU:           p.SKU,
				Name:          p.Name,
				PurchasePrice: p.PurchasePrice,
			})
		}
	}

	if data.PurchaseRecords != nil {
		out.PurchaseRecords = make([]domain.PurchaseRecord, 0, len(data.PurchaseRecords))
		for _, r := range data.PurchaseRecords {
			record := domain.PurchaseRecord{
				ReceiptID:  r.ReceiptID,
				Date:       r.Date,
				SellerID:   r.SellerID,
				CustomerID: r.CustomerID,
				Items:      make([]domain.LineItem, 0, len(r.Items)),
			}
			for _, item := range r.Items {
				record.Items = append(record.Items, domain.LineItem{
					SKU:       item.SKU,
					SalePrice: item.SalePrice,
					Quantity:  item.Quantity,
					Discount:  item.Discount,
				})
			}
			out.PurchaseRecords = append(out.PurchaseRecords, record)
		}
	}

	return out
}

func MapReportRowDomainToApi(row domain.ReportRow) api.ReportRow {
	top := make([]api.TopProduct, 0, len(row.TopProducts))
	for _, p := range row.TopProducts {
		top = append(top, api.TopProduct{SKU: p.SKU, Quantity: p.Quantity})
	}

	return api.ReportRow{
		SellerID:    row.SellerID,
		Name:        row.Name,
		Revenue:     row.Revenue,
		Profit:      row.Profit,
		SalesCount:  row.SalesCount,
		TopProducts: top,
		Bonus:       row.Bonus,
	}
}

func MapSalesReportDomainToApi(report *domain.SalesReport) api.SalesReport {
	out := api.SalesReport{
		Title:        report.Title,
		GeneratedAt:  report.GeneratedAt,
		Currency:     report.Currency,
		TotalRevenue: report.TotalRevenue,
		TotalProfit:  report.TotalProfit,
		TotalBonus:   report.TotalBonus,
		Sellers:      make([]api.ReportRow, 0, len(report.Rows)),
	}
	for _, row := range report.Rows {
		out.Sellers = append(out.Sellers, MapReportRowDomainToApi(row))
	}
	return out
}

// MapStoreRowsToDomainDataset groups consecutive purchase rows of the same
// receipt into one record. Rows must be ordered by receipt.
func MapStoreRowsToDomainDataset(
	sellers []store.SellerRow,
	products []store.ProductRow,
	purchases []store.PurchaseItemRow,
) *domain.Dataset {
	out := &domain.Dataset{
		Sellers:         make([]domain.Seller, 0, len(sellers)),
		Products:        make([]domain.Product, 0, len(products)),
		PurchaseRecords: []domain.PurchaseRecord{},
	}

	for _, s := range sellers {
		out.Sellers = append(out.Sellers, domain.Seller{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
		})
	}

	for _, p := range products {
		out.Products = append(out.Products, domain.Product{
			SKU:           p.SKU,
			Name:          p.Name,
			PurchasePrice: p.PurchasePrice,
		})
	}

	var current *domain.PurchaseRecord
	for _, row := range purchases {
		if current == nil || current.ReceiptID != row.ReceiptID {
			out.PurchaseRecords = append(out.PurchaseRecords, domain.PurchaseRecord{
				ReceiptID:  row.ReceiptID,
				Date:       row.Date,
				SellerID:   row.SellerID,
				CustomerID: row.CustomerID,
				Items:      []domain.LineItem{},
			})
			current = &out.PurchaseRecords[len(out.PurchaseRecords)-1]
		}

		if !row.SKU.Valid {
			continue
		}
		current.Items = append(current.Items, domain.LineItem{
			SKU:       row.SKU.String,
			SalePrice: row.SalePrice.Float64,
			Quantity:  int(row.Quantity.Int64),
			Discount:  row.Discount.Float64,
		})
	}

	return out
}
