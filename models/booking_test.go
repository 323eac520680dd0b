package models

import "testing"

func TestIsValidBookingTransition(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusCancelled, BookingStatusConfirmed, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		{BookingStatus("unknown"), BookingStatusConfirmed, false},
	}

	for _, tc := range cases {
		if got := IsValidBookingTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("IsValidBookingTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestAllowedTransitionsNeverReturnToPending(t *testing.T) {
	for from, targets := range AllowedBookingTransitions {
		for _, to := range targets {
			if to == BookingStatusPending {
				t.Errorf("transition %s -> pending should not be allowed", from)
			}
		}
	}
}
