package actions

import (
	"net/url"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Invoice{},
		&models.Customer{},
		&models.User{},
		&models.Session{},
		&models.ActionAuditLog{},
	))
	return db
}

func newInvoiceActions(t *testing.T, db *gorm.DB) (*InvoiceActions, *repository.InvoiceRepository, *cache.PathCache) {
	t.Helper()
	invoiceRepo := repository.NewInvoiceRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	pathCache := cache.NewPathCache()
	return NewInvoiceActions(invoiceRepo, auditRepo, pathCache), invoiceRepo, pathCache
}

func invoiceForm(customerID, amount, status string) url.Values {
	return url.Values{
		"customerId": {customerID},
		"amount":     {amount},
		"status":     {status},
	}
}

func TestCreateStoresCentsAndDate(t *testing.T) {
	db := newTestDB(t)
	a, invoiceRepo, _ := newInvoiceActions(t, db)

	st := a.Create(invoiceForm("c1", "12.34", "paid"))
	assert.Equal(t, InvoicesPath, st.RedirectTo)
	assert.True(t, st.OK())

	invoices, err := invoiceRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "c1", invoices[0].CustomerID)
	assert.Equal(t, int64(1234), invoices[0].Amount)
	assert.Equal(t, "paid", invoices[0].Status)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), invoices[0].Date)
}

func TestCreateValidationFailureSkipsDatabase(t *testing.T) {
	db := newTestDB(t)
	a, invoiceRepo, _ := newInvoiceActions(t, db)

	st := a.Create(invoiceForm("", "50", "pending"))
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", st.Message)
	assert.Equal(t, []string{"Please select a customer."}, st.Errors["customerId"])
	assert.Empty(t, st.RedirectTo)

	invoices, err := invoiceRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestCreateZeroAmount(t *testing.T) {
	db := newTestDB(t)
	a, _, _ := newInvoiceActions(t, db)

	st := a.Create(invoiceForm("c1", "0", "paid"))
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, st.Errors["amount"])
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", st.Message)
}

func TestCreateDatabaseError(t *testing.T) {
	db := newTestDB(t)
	a, _, pathCache := newInvoiceActions(t, db)
	pathCache.Put(InvoicesPath, []byte("cached"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	st := a.Create(invoiceForm("c1", "10", "pending"))
	assert.Equal(t, "Database Error: Failed to Create Invoice.", st.Message)
	assert.Empty(t, st.RedirectTo)

	// failed create must not invalidate the listing
	_, ok := pathCache.Get(InvoicesPath)
	assert.True(t, ok)
}

func TestCreateRevalidatesListing(t *testing.T) {
	db := newTestDB(t)
	a, _, pathCache := newInvoiceActions(t, db)
	pathCache.Put(InvoicesPath, []byte("stale"))

	a.Create(invoiceForm("c1", "10", "pending"))

	_, ok := pathCache.Get(InvoicesPath)
	assert.False(t, ok)
}

func TestUpdateRewritesFields(t *testing.T) {
	db := newTestDB(t)
	a, invoiceRepo, _ := newInvoiceActions(t, db)

	a.Create(invoiceForm("c1", "12.34", "pending"))
	invoices, err := invoiceRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	created := invoices[0]

	st := a.Update(created.ID.String(), invoiceForm("c2", "99.99", "paid"))
	assert.Equal(t, InvoicesPath, st.RedirectTo)

	updated, err := invoiceRepo.GetByID(created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "c2", updated.CustomerID)
	assert.Equal(t, int64(9999), updated.Amount)
	assert.Equal(t, "paid", updated.Status)
	// id and date are immutable
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Date, updated.Date)
}

func TestUpdateMissingRowStillRedirects(t *testing.T) {
	db := newTestDB(t)
	a, _, _ := newInvoiceActions(t, db)

	st := a.Update("inv-1", invoiceForm("c2", "10", "paid"))
	assert.Equal(t, InvoicesPath, st.RedirectTo)
	assert.True(t, st.OK())
}

func TestUpdateValidationFailure(t *testing.T) {
	db := newTestDB(t)
	a, _, _ := newInvoiceActions(t, db)

	st := a.Update("inv-1", invoiceForm("c2", "-1", "paid"))
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", st.Message)
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, st.Errors["amount"])
	assert.Empty(t, st.RedirectTo)
}

func TestUpdateDatabaseError(t *testing.T) {
	db := newTestDB(t)
	a, _, _ := newInvoiceActions(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	st := a.Update("inv-1", invoiceForm("c2", "10", "paid"))
	assert.Equal(t, "Database Error: Failed to Update Invoice.", st.Message)
}

func TestDeleteMissingRowIsNoOp(t *testing.T) {
	db := newTestDB(t)
	a, _, pathCache := newInvoiceActions(t, db)
	pathCache.Put(InvoicesPath, []byte("stale"))

	st := a.Delete("does-not-exist")
	assert.True(t, st.OK())
	assert.Empty(t, st.RedirectTo)

	_, ok := pathCache.Get(InvoicesPath)
	assert.False(t, ok)
}

func TestDeleteRemovesRow(t *testing.T) {
	db := newTestDB(t)
	a, invoiceRepo, _ := newInvoiceActions(t, db)

	a.Create(invoiceForm("c1", "10", "pending"))
	invoices, err := invoiceRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	st := a.Delete(invoices[0].ID.String())
	assert.True(t, st.OK())

	invoices, err = invoiceRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestDeleteDatabaseError(t *testing.T) {
	db := newTestDB(t)
	a, _, _ := newInvoiceActions(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	st := a.Delete("inv-1")
	assert.Equal(t, "Database Error: Failed to Delete Invoice.", st.Message)
}

func TestMutationsWriteAuditLog(t *testing.T) {
	db := newTestDB(t)
	a, invoiceRepo, _ := newInvoiceActions(t, db)
	auditRepo := repository.NewAuditLogRepository(db)

	a.Create(invoiceForm("c1", "10", "pending"))
	invoices, err := invoiceRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	id := invoices[0].ID.String()

	a.Update(id, invoiceForm("c1", "20", "paid"))
	a.Delete(id)

	entries, err := auditRepo.ListByInvoice(id)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "create", entries[0].Action)
	assert.Equal(t, "update", entries[1].Action)
	assert.Equal(t, "delete", entries[2].Action)
	assert.Contains(t, string(entries[0].Form), "customerId")
}
