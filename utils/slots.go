package utils

// AvailableTimeSlots is the fixed daily slot template every shop offers.
var AvailableTimeSlots = []string{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"01:00 PM",
	"01:30 PM",
	"02:00 PM",
	"02:30 PM",
	"03:00 PM",
	"03:30 PM",
	"04:00 PM",
	"04:30 PM",
	"05:00 PM",
	"05:30 PM",
	"06:00 PM",
}

// bookedSlots simulates a handful of already-taken slots. Availability
// is intentionally constant: it does not vary by date, shop, or stored
// bookings. This mirrors the product behavior; a real scheduling engine
// is out of scope.
var bookedSlots = map[string]bool{
	"09:00 AM": true,
	"02:00 PM": true,
	"05:00 PM": true,
}

// GetAvailableSlots returns the open slots for a date at a shop.
// The date and shopID parameters are accepted for interface stability
// but do not affect the result.
func GetAvailableSlots(date, shopID string) []string {
	slots := make([]string, 0, len(AvailableTimeSlots))
	for _, s := range AvailableTimeSlots {
		if !bookedSlots[s] {
			slots = append(slots, s)
		}
	}
	return slots
}

// IsValidSlot reports whether the label is an open slot: part of the
// daily template and not one of the standing unavailable slots.
func IsValidSlot(slot string) bool {
	if bookedSlots[slot] {
		return false
	}
	for _, s := range AvailableTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
