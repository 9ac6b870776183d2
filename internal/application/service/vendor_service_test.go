package service

import (
	"context"
	"testing"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/stretchr/testify/require"
)

func newVendorFixture(t *testing.T) (*VendorService, *fakeVendorRepo, *fakeVendorInvoiceRepo) {
	t.Helper()
	vendorRepo := newFakeVendorRepo()
	invoiceRepo := newFakeVendorInvoiceRepo()
	return NewVendorService(vendorRepo, invoiceRepo), vendorRepo, invoiceRepo
}

func TestCreateInvoiceStoresAmountInCents(t *testing.T) {
	svc, vendorRepo, _ := newVendorFixture(t)
	vendor := &entity.Vendor{Name: "Fresh Farms"}
	require.NoError(t, vendorRepo.Create(context.Background(), vendor))

	invoice, err := svc.CreateInvoice(context.Background(), vendor.ID, &VendorInvoiceInput{
		InvoiceNo:   "FF-1001",
		InvoiceDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Amount:      125.50,
	})
	require.NoError(t, err)
	require.Equal(t, int64(12550), invoice.Amount)
	require.False(t, invoice.Paid)
}

func TestMarkInvoicePaidRejectsAlreadyPaid(t *testing.T) {
	svc, vendorRepo, invoiceRepo := newVendorFixture(t)
	vendor := &entity.Vendor{Name: "Fresh Farms"}
	require.NoError(t, vendorRepo.Create(context.Background(), vendor))

	invoice, err := svc.CreateInvoice(context.Background(), vendor.ID, &VendorInvoiceInput{
		InvoiceNo: "FF-1001",
		Amount:    50,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkInvoicePaid(context.Background(), invoice.ID))
	require.True(t, invoiceRepo.invoices[invoice.ID].Paid)

	err = svc.MarkInvoicePaid(context.Background(), invoice.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already paid")
}

func TestListInvoicesReportsOutstanding(t *testing.T) {
	svc, vendorRepo, _ := newVendorFixture(t)
	vendor := &entity.Vendor{Name: "Fresh Farms"}
	require.NoError(t, vendorRepo.Create(context.Background(), vendor))

	paid, err := svc.CreateInvoice(context.Background(), vendor.ID, &VendorInvoiceInput{
		InvoiceNo: "FF-1001",
		Amount:    100,
	})
	require.NoError(t, err)
	require.NoError(t, svc.MarkInvoicePaid(context.Background(), paid.ID))

	_, err = svc.CreateInvoice(context.Background(), vendor.ID, &VendorInvoiceInput{
		InvoiceNo: "FF-1002",
		Amount:    75.25,
	})
	require.NoError(t, err)

	summary, err := svc.ListInvoices(context.Background(), vendor.ID, &pagination.PaginationParams{Page: 1, PerPage: 20})
	require.NoError(t, err)
	require.Len(t, summary.Invoices.Items, 2)
	require.Equal(t, 75.25, summary.Outstanding)
}
