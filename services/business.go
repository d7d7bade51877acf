package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"autoparts-invoicing/client"
	"autoparts-invoicing/models"
)

// BusinessFlow loads and saves the one-per-user business profile.
type BusinessFlow struct {
	api    *client.Client
	notify Notifier
	guard  *inflightGuard

	mu   sync.Mutex
	info *models.BusinessInfo
}

func NewBusinessFlow(api *client.Client, notify Notifier) *BusinessFlow {
	if notify == nil {
		notify = noopNotifier{}
	}
	return &BusinessFlow{api: api, notify: notify, guard: newInflightGuard()}
}

// Info returns the cached profile, nil before the first successful load
// (or when none has been saved yet).
func (f *BusinessFlow) Info() *models.BusinessInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.info == nil {
		return nil
	}
	info := *f.info
	return &info
}

// Load fetches the profile. A 404 (nothing saved yet) is not an error;
// it just leaves the cache empty.
func (f *BusinessFlow) Load(ctx context.Context) error {
	info, err := f.api.BusinessInfo(ctx)
	if err != nil {
		var reqErr *client.RequestError
		if errors.As(err, &reqErr) && reqErr.Status == 404 {
			f.mu.Lock()
			f.info = nil
			f.mu.Unlock()
			return nil
		}
		f.notify.Notify(err.Error())
		return err
	}
	f.mu.Lock()
	f.info = info
	f.mu.Unlock()
	return nil
}

// Save validates required fields locally, then upserts.
func (f *BusinessFlow) Save(ctx context.Context, input models.BusinessInput) (*models.BusinessInfo, error) {
	if strings.TrimSpace(input.CompanyName) == "" || strings.TrimSpace(input.Address) == "" {
		err := &client.RequestError{Message: "Company name and address are required"}
		f.notify.Notify(err.Message)
		return nil, err
	}

	key := "business/save"
	if err := f.guard.acquire(key); err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}
	defer f.guard.release(key)

	saved, err := f.api.SaveBusinessInfo(ctx, input)
	if err != nil {
		f.notify.Notify(err.Error())
		return nil, err
	}

	f.mu.Lock()
	f.info = saved
	f.mu.Unlock()
	return saved, nil
}
