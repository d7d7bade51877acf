package services

import (
	"context"
	"sync"

	"autoparts-invoicing/client"
	"autoparts-invoicing/models"
)

// DashboardFlow loads the sales statistics block.
type DashboardFlow struct {
	api    *client.Client
	notify Notifier

	mu    sync.Mutex
	stats *models.DashboardStats
}

func NewDashboardFlow(api *client.Client, notify Notifier) *DashboardFlow {
	if notify == nil {
		notify = noopNotifier{}
	}
	return &DashboardFlow{api: api, notify: notify}
}

// Stats returns the cached statistics, nil before the first load.
func (f *DashboardFlow) Stats() *models.DashboardStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stats == nil {
		return nil
	}
	stats := *f.stats
	return &stats
}

func (f *DashboardFlow) Load(ctx context.Context) error {
	stats, err := f.api.DashboardStats(ctx)
	if err != nil {
		f.notify.Notify(err.Error())
		return err
	}
	f.mu.Lock()
	f.stats = stats
	f.mu.Unlock()
	return nil
}
