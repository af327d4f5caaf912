package booking

import "testing"

func TestTransitions(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusNoShow},
	}
	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Fatalf("%s -> %s should be allowed: %v", tc.from, tc.to, err)
		}
	}

	forbidden := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusNoShow},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusNoShow, StatusConfirmed},
	}
	for _, tc := range forbidden {
		if err := CanTransition(tc.from, tc.to); err == nil {
			t.Fatalf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestIsActive(t *testing.T) {
	if !IsActive(StatusPending) || !IsActive(StatusConfirmed) {
		t.Fatalf("pending and confirmed hold a seat")
	}
	if IsActive(StatusCancelled) || IsActive(StatusCompleted) || IsActive(StatusNoShow) {
		t.Fatalf("terminal states must not hold a seat")
	}
}
