package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"autoparts-invoicing/client"
	"autoparts-invoicing/models"
)

func newFlowClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	return c
}

func TestCreateCustomerValidatesBeforeNetwork(t *testing.T) {
	var calls int32
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[]`))
	}))

	flow := NewCustomerFlow(api, nil)
	if _, err := flow.Create(context.Background(), models.CustomerInput{Name: "   "}); err == nil {
		t.Fatal("expected validation error")
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("validation failure made %d network calls, want 0", n)
	}
}

func TestCreateCustomerFailureLeavesListUnchanged(t *testing.T) {
	existing := []models.Customer{{ID: 1, Name: "John's Auto Repair"}}
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(existing)
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Customer name required"}`))
		}
	}))

	notifier := NewToastCenter(0)
	flow := NewCustomerFlow(api, notifier)
	if err := flow.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err := flow.Create(context.Background(), models.CustomerInput{Name: "Smith Motors"})
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if err.Error() != "Customer name required" {
		t.Fatalf("surfaced %q, want the server's exact message", err.Error())
	}

	got := flow.Customers()
	if len(got) != 1 || got[0].Name != "John's Auto Repair" {
		t.Fatalf("list mutated on failure: %+v", got)
	}
	if toasts := notifier.Active(); len(toasts) != 1 || toasts[0].Message != "Customer name required" {
		t.Fatalf("expected one toast with the server message, got %+v", toasts)
	}
}

func TestDeleteCustomerRemovesExactlyOne(t *testing.T) {
	store := map[uint]models.Customer{
		1: {ID: 1, Name: "John's Auto Repair"},
		2: {ID: 2, Name: "Smith Motors"},
		3: {ID: 3, Name: "Quick Fix Garage"},
	}
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			out := []models.Customer{}
			for _, c := range store {
				out = append(out, c)
			}
			json.NewEncoder(w).Encode(out)
		case http.MethodDelete:
			if r.URL.Path != "/customers/2" {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":"Customer not found"}`))
				return
			}
			delete(store, 2)
			json.NewEncoder(w).Encode(models.Message{Message: "Customer deleted successfully"})
		}
	}))

	flow := NewCustomerFlow(api, nil)
	if err := flow.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := flow.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got := flow.Customers()
	if len(got) != 2 {
		t.Fatalf("expected 2 customers after delete, got %d", len(got))
	}
	for _, c := range got {
		if c.ID == 2 {
			t.Fatal("deleted customer still present")
		}
	}
}
