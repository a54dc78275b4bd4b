package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Generate(
	ctx context.Context,
	title string,
	data *domain.Dataset,
) (*domain.SalesReport, error) {
	args := m.Called(ctx, title, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}

func (m *mockReportService) GenerateFromSource(
	ctx context.Context,
	title, sourceName, configPath string,
) (*domain.SalesReport, error) {
	args := m.Called(ctx, title, sourceName, configPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}

func (m *mockReportService) ListSources() []string {
	return m.Called().Get(0).([]string)
}

func sampleReport() *domain.SalesReport {
	return &domain.SalesReport{
		Title:       "Q4",
		GeneratedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Rows: []domain.ReportRow{{
			SellerID:    "A",
			Name:        "Alice Adams",
			Revenue:     15,
			Profit:      5,
			SalesCount:  1,
			TopProducts: []domain.TopProduct{{SKU: "P1", Quantity: 1}},
			Bonus:       0.75,
		}},
		TotalRevenue: 15,
		TotalProfit:  5,
		TotalBonus:   0.75,
	}
}

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/reports", h.CreateReport)
	r.Get("/sources", h.ListSources)
	r.Post("/sources/{source}/reports", h.CreateSourceReport)
	return r
}

func TestHandler_CreateReport(t *testing.T) {
	svc := new(mockReportService)
	svc.On("Generate", mock.Anything, "Q4", mock.MatchedBy(func(d *domain.Dataset) bool {
		return len(d.Sellers) == 1 && d.PurchaseRecords[0].Items[0].SKU == "P1"
	})).Return(sampleReport(), nil)

	body := `{
		"sellers": [{"id": "A", "first_name": "Alice", "last_name": "Adams"}],
		"products": [{"sku": "P1", "purchase_price": 10}],
		"purchase_records": [{"seller_id": "A", "items": [{"sku": "P1", "sale_price": 15, "quantity": 1, "discount": 0}]}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/reports?title=Q4", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(NewHandler(svc, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.SalesReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Q4", response.Title)
	require.Len(t, response.Sellers, 1)
	assert.Equal(t, 0.75, response.Sellers[0].Bonus)
	svc.AssertExpectations(t)
}

func TestHandler_CreateReport_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
	}{
		{
			name:           "malformed JSON",
			body:           `{"sellers": [`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid input",
			body:           `{}`,
			err:            &sales.InvalidInputError{Reason: "sellers must be a list"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing policy",
			body:           `{}`,
			err:            &sales.MissingPolicyError{Policy: "revenue"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unexpected failure",
			body:           `{}`,
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockReportService)
			if tc.err != nil {
				svc.On("Generate", mock.Anything, "", mock.Anything).Return(nil, tc.err)
			}

			req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			newRouter(NewHandler(svc, "")).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			var response api.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			if tc.err != nil {
				assert.Equal(t, tc.err.Error(), response.Error)
			} else {
				assert.NotEmpty(t, response.Error)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_ListSources(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ListSources").Return([]string{"duckdb", "file"})

	rec := httptest.NewRecorder()
	newRouter(NewHandler(svc, "")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sources", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var response []api.Source
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []api.Source{{Name: "duckdb"}, {Name: "file"}}, response)
}

func TestHandler_CreateSourceReport(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ListSources").Return([]string{"file", "snowflake"})
	svc.On("GenerateFromSource", mock.Anything, "", "snowflake", "/etc/sales/snowflake.yaml").
		Return(sampleReport(), nil)
	svc.On("GenerateFromSource", mock.Anything, "", "file", "/etc/sales/data.json").
		Return(sampleReport(), nil)

	router := newRouter(NewHandler(svc, "/etc/sales"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sources/snowflake/reports", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sources/file/reports?config=../../data.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertExpectations(t)
}

func TestHandler_CreateSourceReport_UnknownSource(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ListSources").Return([]string{"file"})

	rec := httptest.NewRecorder()
	newRouter(NewHandler(svc, "")).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sources/oracle/reports", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "GenerateFromSource", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_CreateSourceReport_WrappedValidationError(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ListSources").Return([]string{"file"})
	svc.On("GenerateFromSource", mock.Anything, "", "file", "file.yaml").
		Return(nil, errors.Join(errors.New("load"), &sales.InvalidInputError{Reason: "products must not be empty"}))

	rec := httptest.NewRecorder()
	newRouter(NewHandler(svc, "")).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sources/file/reports", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateSourceReport_MissingProfile(t *testing.T) {
	svc := new(mockReportService)
	svc.On("ListSources").Return([]string{"duckdb"})
	svc.On("GenerateFromSource", mock.Anything, "", "duckdb", "anything.db").
		Return(nil, fmt.Errorf("failed to open DuckDB: %w", fs.ErrNotExist))

	rec := httptest.NewRecorder()
	newRouter(NewHandler(svc, "")).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/sources/duckdb/reports?config=anything.db", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
