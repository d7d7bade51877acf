package services

import (
	"context"
	"strings"
	"sync"

	"autoparts-invoicing/client"
	"autoparts-invoicing/models"
)

// CustomerFlow is the list/create/update/delete flow for customers.
// The cached list is only ever replaced wholesale after a successful
// reload; a failed mutation leaves it untouched.
type CustomerFlow struct {
	api    *client.Client
	notify Notifier
	guard  *inflightGuard

	mu        sync.Mutex
	customers []models.Customer
}

func NewCustomerFlow(api *client.Client, notify Notifier) *CustomerFlow {
	if notify == nil {
		notify = noopNotifier{}
	}
	return &CustomerFlow{api: api, notify: notify, guard: newInflightGuard()}
}

// Customers returns the cached list.
func (f *CustomerFlow) Customers() []models.Customer {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Customer, len(f.customers))
	copy(out, f.customers)
	return out
}

// Load fetches the full customer list and replaces the cache.
func (f *CustomerFlow) Load(ctx context.Context) error {
	customers, err := f.api.Customers(ctx)
	if err != nil {
		f.notify.Notify(err.Error())
		return err
	}
	f.mu.Lock()
	f.customers = customers
	f.mu.Unlock()
	return nil
}

func (f *CustomerFlow) Create(ctx context.Context, input models.CustomerInput) (*models.Customer, error) {
	// Required-field check before any network call.
	if strings.TrimSpace(input.Name) == "" {
		err := &client.RequestError{Message: "Customer name is required"}
		f.notify.Notify(err.Message)
		return nil, err
	}

	key := "customer/create"
	if err := f.guard.acquire(key); err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}
	defer f.guard.release(key)

	created, err := f.api.CreateCustomer(ctx, input)
	if err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}

	if err := f.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}

func (f *CustomerFlow) Update(ctx context.Context, id uint, input models.CustomerUpdate) (*models.Customer, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		err := &client.RequestError{Message: "Customer name is required"}
		f.notify.Notify(err.Message)
		return nil, err
	}

	key := entityKey("customer", id)
	if err := f.guard.acquire(key); err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}
	defer f.guard.release(key)

	updated, err := f.api.UpdateCustomer(ctx, id, input)
	if err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}

	if err := f.Load(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

func (f *CustomerFlow) Delete(ctx context.Context, id uint) error {
	key := entityKey("customer", id)
	if err := f.guard.acquire(key); err != nil {
		f.notify.Notify(err.Error())
		return err
	}
	defer f.guard.release(key)

	if err := f.api.DeleteCustomer(ctx, id); err != nil {
		f.notify.Notify(err.Error())
		return err
	}
	return f.Load(ctx)
}
