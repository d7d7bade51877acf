package services

import (
	"context"
	"strings"
	"sync"

	"autoparts-invoicing/client"
	"autoparts-invoicing/models"
)

// Session holds the authenticated-user state explicitly: set on a
// successful login or auth check, cleared on logout. Views receive it
// as a dependency instead of reading ambient globals.
type Session struct {
	api    *client.Client
	notify Notifier

	mu   sync.Mutex
	user *models.UserInfo
}

func NewSession(api *client.Client, notify Notifier) *Session {
	if notify == nil {
		notify = noopNotifier{}
	}
	return &Session{api: api, notify: notify}
}

// User returns the current user, or nil when unauthenticated.
func (s *Session) User() *models.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		err := &client.RequestError{Message: "Email and password required"}
		s.notify.Notify(err.Message)
		return err
	}

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notify.Notify(err.Error())
		return err
	}

	s.mu.Lock()
	s.user = &resp.User
	s.mu.Unlock()
	return nil
}

func (s *Session) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.notify.Notify(err.Error())
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// Refresh probes the server for session state and updates the user
// accordingly; an unauthenticated result clears it without error.
func (s *Session) Refresh(ctx context.Context) error {
	check, err := s.api.CheckAuth(ctx)
	if err != nil {
		s.notify.Notify(err.Error())
		return err
	}

	s.mu.Lock()
	if check.Authenticated {
		s.user = check.User
	} else {
		s.user = nil
	}
	s.mu.Unlock()
	return nil
}
