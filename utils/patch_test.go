package utils

import (
	"reflect"
	"testing"
)

func TestUpdatesFromPtrDTO(t *testing.T) {
	type dto struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Hidden *string `json:"-"`
		Status *string `json:"status,omitempty"`
	}
	name := "Joe's Garage"
	status := "paid"
	hidden := "nope"

	got := UpdatesFromPtrDTO(&dto{Name: &name, Hidden: &hidden, Status: &status}, nil)
	want := map[string]any{"name": name, "status": status}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUpdatesFromPtrDTORenames(t *testing.T) {
	type dto struct {
		CustomerID *uint `json:"customer_id"`
	}
	id := uint(4)
	got := UpdatesFromPtrDTO(&dto{CustomerID: &id}, map[string]string{"customer_id": "c_id"})
	if len(got) != 1 || got["c_id"] != id {
		t.Fatalf("got %v", got)
	}
}

func TestUpdatesFromPtrDTONonPointerInput(t *testing.T) {
	if got := UpdatesFromPtrDTO(struct{}{}, nil); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestParseIntDefault(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"5", 1, 5},
		{" 20 ", 1, 20},
		{"", 10, 10},
		{"abc", 10, 10},
		{"-3", 10, 10},
		{"0", 10, 0},
	}
	for _, c := range cases {
		if got := ParseIntDefault(c.in, c.def); got != c.want {
			t.Errorf("ParseIntDefault(%q, %d) = %d, want %d", c.in, c.def, got, c.want)
		}
	}
}
