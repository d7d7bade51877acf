package services

import (
	"context"
	"sync"

	"autoparts-invoicing/client"
	"autoparts-invoicing/models"
)

// InvoiceFlow is the list/view/create/update flow for invoices. The
// server owns the tax rate: the flow previews totals with the rate most
// recently echoed by the server and falls back to the published default
// only before first contact.
type InvoiceFlow struct {
	api    *client.Client
	notify Notifier
	guard  *inflightGuard

	mu       sync.Mutex
	filter   client.InvoiceFilter
	invoices []models.InvoiceSummary
	total    int64
	taxRate  float64 // fractional
}

func NewInvoiceFlow(api *client.Client, notify Notifier) *InvoiceFlow {
	if notify == nil {
		notify = noopNotifier{}
	}
	return &InvoiceFlow{
		api:     api,
		notify:  notify,
		guard:   newInflightGuard(),
		taxRate: models.DefaultTaxRate,
	}
}

// Invoices returns the cached summaries for the current filter.
func (f *InvoiceFlow) Invoices() []models.InvoiceSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.InvoiceSummary, len(f.invoices))
	copy(out, f.invoices)
	return out
}

// Total returns the unpaginated match count from the last load.
func (f *InvoiceFlow) Total() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// TaxRate returns the fractional rate used for previews.
func (f *InvoiceFlow) TaxRate() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.taxRate
}

// SetFilter stores the filter applied by subsequent loads.
func (f *InvoiceFlow) SetFilter(filter client.InvoiceFilter) {
	f.mu.Lock()
	f.filter = filter
	f.mu.Unlock()
}

// Load fetches the invoice list for the current filter and replaces
// the cache.
func (f *InvoiceFlow) Load(ctx context.Context) error {
	f.mu.Lock()
	filter := f.filter
	f.mu.Unlock()

	list, err := f.api.Invoices(ctx, filter)
	if err != nil {
		f.notify.Notify(err.Error())
		return err
	}

	f.mu.Lock()
	f.invoices = list.Data
	f.total = list.Total
	f.mu.Unlock()
	return nil
}

// Get fetches one invoice with line items and adopts its tax rate for
// future previews.
func (f *InvoiceFlow) Get(ctx context.Context, id uint) (*models.Invoice, error) {
	inv, err := f.api.Invoice(ctx, id)
	if err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}
	// Every stored invoice echoes the rate the server applied, so a 0%
	// rate is a real value to adopt, not an absent one.
	f.mu.Lock()
	f.taxRate = inv.TaxRate / 100
	f.mu.Unlock()
	return inv, nil
}

// PreviewTotals computes display totals for an in-progress invoice using
// the last server-supplied rate.
func (f *InvoiceFlow) PreviewTotals(items []models.LineItemInput) models.Totals {
	return models.ComputeTotals(items, f.TaxRate())
}

// Create validates locally (selected customer, at least one valid line
// item) before any network call, then submits only the valid lines.
func (f *InvoiceFlow) Create(ctx context.Context, input models.InvoiceInput) (*models.InvoiceCreated, error) {
	if input.CustomerID == 0 {
		err := &client.RequestError{Message: "Customer is required"}
		f.notify.Notify(err.Message)
		return nil, err
	}
	valid := input.ValidLineItems()
	if len(valid) == 0 {
		err := &client.RequestError{Message: "At least one line item is required"}
		f.notify.Notify(err.Message)
		return nil, err
	}
	input.LineItems = valid

	key := "invoice/create"
	if err := f.guard.acquire(key); err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}
	defer f.guard.release(key)

	created, err := f.api.CreateInvoice(ctx, input)
	if err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}

	if err := f.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// SetStatus flips an invoice between unpaid and paid. The per-invoice
// guard makes a second click a no-op until the first call resolves.
func (f *InvoiceFlow) SetStatus(ctx context.Context, id uint, status models.InvoiceStatus) (*models.Invoice, error) {
	if !status.Valid() {
		err := &client.RequestError{Message: "Invalid status"}
		f.notify.Notify(err.Message)
		return nil, err
	}

	key := entityKey("invoice", id)
	if err := f.guard.acquire(key); err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}
	defer f.guard.release(key)

	updated, err := f.api.UpdateInvoice(ctx, id, models.InvoiceUpdate{Status: &status})
	if err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}

	if err := f.Load(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// UpdateNotes replaces an invoice's notes.
func (f *InvoiceFlow) UpdateNotes(ctx context.Context, id uint, notes string) (*models.Invoice, error) {
	key := entityKey("invoice", id)
	if err := f.guard.acquire(key); err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}
	defer f.guard.release(key)

	updated, err := f.api.UpdateInvoice(ctx, id, models.InvoiceUpdate{Notes: &notes})
	if err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}
	return updated, nil
}

// DownloadPDF saves the rendered invoice to destPath.
func (f *InvoiceFlow) DownloadPDF(ctx context.Context, id uint, destPath string) error {
	if err := f.api.DownloadInvoicePDF(ctx, id, destPath); err != nil {
		f.notify.Notify(err.Error())
		return err
	}
	return nil
}
