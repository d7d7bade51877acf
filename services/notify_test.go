package services

import (
	"testing"
	"time"
)

func TestToastCenterAutoDismiss(t *testing.T) {
	center := NewToastCenter(50 * time.Millisecond)
	center.Notify("save failed")

	active := center.Active()
	if len(active) != 1 || active[0].Message != "save failed" {
		t.Fatalf("active = %+v, want one toast", active)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(center.Active()) == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("toast did not auto-dismiss")
}

func TestToastCenterDefaultDuration(t *testing.T) {
	center := NewToastCenter(0)
	if center.duration != DefaultToastDuration {
		t.Fatalf("duration = %v, want %v", center.duration, DefaultToastDuration)
	}
}
