package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"autoparts-invoicing/models"
)

func TestCreateInvoiceRejectsWithoutCustomer(t *testing.T) {
	var calls int32
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	flow := NewInvoiceFlow(api, nil)
	_, err := flow.Create(context.Background(), models.InvoiceInput{
		LineItems: []models.LineItemInput{{ProductName: "X", Quantity: 1, UnitPrice: 1}},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("missing customer must be rejected before any network call")
	}
}

func TestCreateInvoiceRejectsZeroValidLineItems(t *testing.T) {
	var calls int32
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	flow := NewInvoiceFlow(api, nil)
	_, err := flow.Create(context.Background(), models.InvoiceInput{
		CustomerID: 1,
		LineItems: []models.LineItemInput{
			{ProductName: "", Quantity: 1, UnitPrice: 1},
			{ProductName: "X", Quantity: 0, UnitPrice: 1},
		},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("zero valid line items must be rejected before any network call")
	}
}

func TestStatusUpdateRoundTrip(t *testing.T) {
	status := models.StatusUnpaid
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut:
			var upd models.InvoiceUpdate
			json.NewDecoder(r.Body).Decode(&upd)
			if upd.Status != nil {
				status = *upd.Status
			}
			json.NewEncoder(w).Encode(models.Invoice{ID: 1, Status: status})
		default:
			json.NewEncoder(w).Encode(models.InvoiceList{
				Data:    []models.InvoiceSummary{{ID: 1, InvoiceNumber: "20260831-001", Status: status}},
				Total:   1,
				Page:    1,
				PerPage: 20,
			})
		}
	}))

	flow := NewInvoiceFlow(api, nil)
	if err := flow.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := flow.Invoices()[0].Status; got != models.StatusUnpaid {
		t.Fatalf("precondition: status = %v", got)
	}

	if _, err := flow.SetStatus(context.Background(), 1, models.StatusPaid); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if got := flow.Invoices()[0].Status; got != models.StatusPaid {
		t.Fatalf("after update, list shows %v, want paid", got)
	}
}

func TestSetStatusGuardsAgainstDuplicateInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var enteredOnce sync.Once
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			enteredOnce.Do(func() { close(entered) })
			<-release
			json.NewEncoder(w).Encode(models.Invoice{ID: 1, Status: models.StatusPaid})
			return
		}
		json.NewEncoder(w).Encode(models.InvoiceList{})
	}))

	flow := NewInvoiceFlow(api, nil)

	done := make(chan error, 1)
	go func() {
		_, err := flow.SetStatus(context.Background(), 1, models.StatusPaid)
		done <- err
	}()
	<-entered

	// Second click while the first call is pending.
	_, err := flow.SetStatus(context.Background(), 1, models.StatusPaid)
	if !errors.Is(err, ErrMutationInFlight) {
		t.Fatalf("expected ErrMutationInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first SetStatus failed: %v", err)
	}

	// Guard released: a new mutation goes through.
	if _, err := flow.SetStatus(context.Background(), 2, models.StatusUnpaid); err != nil {
		t.Fatalf("guard not released for other entities: %v", err)
	}
}

func TestPreviewAdoptsServerTaxRate(t *testing.T) {
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Invoice{ID: 1, TaxRate: 10.0})
	}))

	flow := NewInvoiceFlow(api, nil)
	if got := flow.TaxRate(); got != models.DefaultTaxRate {
		t.Fatalf("before first contact, rate = %v, want default", got)
	}

	if _, err := flow.Get(context.Background(), 1); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := flow.TaxRate(); got != 0.10 {
		t.Fatalf("rate = %v, want server-supplied 0.10", got)
	}

	totals := flow.PreviewTotals([]models.LineItemInput{{ProductName: "X", Quantity: 1, UnitPrice: 100}})
	if totals.TaxAmount != 10.00 || totals.Total != 110.00 {
		t.Fatalf("preview used wrong rate: %+v", totals)
	}
}

func TestPreviewAdoptsZeroTaxRate(t *testing.T) {
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Invoice{ID: 1, TaxRate: 0})
	}))

	flow := NewInvoiceFlow(api, nil)
	if _, err := flow.Get(context.Background(), 1); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := flow.TaxRate(); got != 0 {
		t.Fatalf("rate = %v, want the server's 0%% adopted", got)
	}

	totals := flow.PreviewTotals([]models.LineItemInput{{ProductName: "X", Quantity: 1, UnitPrice: 100}})
	if totals.TaxAmount != 0 || totals.Total != 100.00 {
		t.Fatalf("preview ignored the 0%% rate: %+v", totals)
	}
}
