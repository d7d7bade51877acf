package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok", Path: "/"})
			w.Write([]byte(`{"message":"Login successful","user":{"id":"u1","name":"Admin User","email":"admin@autoparts.com"}}`))
		case "/auth/logout":
			w.Write([]byte(`{"message":"Logout successful"}`))
		case "/auth/check":
			w.Write([]byte(`{"authenticated":false}`))
		}
	}))

	sess := NewSession(api, nil)
	if sess.User() != nil {
		t.Fatal("fresh session must have no user")
	}

	if err := sess.Login(context.Background(), "admin@autoparts.com", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	user := sess.User()
	if user == nil || user.Email != "admin@autoparts.com" {
		t.Fatalf("user after login = %+v", user)
	}

	if err := sess.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sess.User() != nil {
		t.Fatal("user must be cleared on logout")
	}

	if err := sess.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if sess.User() != nil {
		t.Fatal("unauthenticated check must leave user nil")
	}
}

func TestSessionLoginValidatesBeforeNetwork(t *testing.T) {
	var calls int32
	api := newFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	sess := NewSession(api, nil)
	if err := sess.Login(context.Background(), "  ", ""); err == nil {
		t.Fatal("expected validation error")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("empty credentials must not reach the network")
	}
}
