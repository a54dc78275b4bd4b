package report

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Load(ctx context.Context) (*domain.Dataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func (m *mockSource) Close() error {
	return m.Called().Error(0)
}

func dataset() *domain.Dataset {
	return &domain.Dataset{
		Sellers: []domain.Seller{
			{ID: "A", FirstName: "Alice", LastName: "Adams"},
			{ID: "B", FirstName: "Bob", LastName: "Brown"},
		},
		Products: []domain.Product{
			{SKU: "P1", PurchasePrice: 10},
			{SKU: "P2", PurchasePrice: 20},
		},
		PurchaseRecords: []domain.PurchaseRecord{
			{SellerID: "A", Items: []domain.LineItem{{SKU: "P1", SalePrice: 15, Quantity: 1}}},
			{SellerID: "B", Items: []domain.LineItem{{SKU: "P2", SalePrice: 25, Quantity: 1, Discount: 10}}},
		},
	}
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestService_Generate(t *testing.T) {
	svc := NewService(source.NewRegistry(nil), Options{
		Policies: sales.DefaultPolicies(),
		Workers:  2,
		Currency: "USD",
	})

	report, err := svc.Generate(testContext(t), "", dataset())

	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, report.Title)
	assert.Equal(t, "USD", report.Currency)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "A", report.Rows[0].SellerID)
	assert.Equal(t, 37.5, report.TotalRevenue)
	assert.Equal(t, 7.5, report.TotalProfit)
	assert.Equal(t, 1.0, report.TotalBonus)
}

func TestService_GenerateRejectsMissingPolicies(t *testing.T) {
	svc := NewService(source.NewRegistry(nil), Options{})

	_, err := svc.Generate(testContext(t), "", dataset())

	var missing *sales.MissingPolicyError
	assert.True(t, errors.As(err, &missing))
}

func TestService_GenerateFromSource(t *testing.T) {
	src := new(mockSource)
	src.On("Load", mock.Anything).Return(dataset(), nil)
	src.On("Close").Return(nil)

	registry := source.NewRegistry(map[string]source.Factory{
		"stub": func(_ context.Context, configPath string) (source.Source, error) {
			assert.Equal(t, "stub.yaml", configPath)
			return src, nil
		},
	})
	svc := NewService(registry, Options{Policies: sales.DefaultPolicies()})

	report, err := svc.GenerateFromSource(testContext(t), "Q4", "stub", "stub.yaml")

	require.NoError(t, err)
	assert.Equal(t, "Q4", report.Title)
	assert.Len(t, report.Rows, 2)
	assert.Equal(t, []string{"stub"}, svc.ListSources())
	src.AssertExpectations(t)
}

func TestService_GenerateFromSource_LoadError(t *testing.T) {
	src := new(mockSource)
	src.On("Load", mock.Anything).Return(nil, errors.New("connection refused"))
	src.On("Close").Return(nil)

	registry := source.NewRegistry(map[string]source.Factory{
		"stub": func(context.Context, string) (source.Source, error) { return src, nil },
	})
	svc := NewService(registry, Options{Policies: sales.DefaultPolicies()})

	_, err := svc.GenerateFromSource(testContext(t), "", "stub", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	src.AssertExpectations(t)
}

func TestService_GenerateFromSource_UnknownSource(t *testing.T) {
	svc := NewService(source.NewRegistry(nil), Options{Policies: sales.DefaultPolicies()})

	_, err := svc.GenerateFromSource(testContext(t), "", "nope", "")

	assert.ErrorContains(t, err, `source "nope" is not registered`)
}
