package intake

import (
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/intake-platform/internal/catalog"
	"github.com/mindwell/intake-platform/internal/validate"
)

// BookingSummary is the read-only review projection shown before
// confirming an appointment. It is computed on demand from the field
// values and never persisted.
type BookingSummary struct {
	Therapist string `json:"therapist,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Service   string `json:"service"`
	Total     int    `json:"total"`
}

// NewBookingFlow builds the three-step appointment flow: schedule
// selection, optional notes, then payment method and confirmation. now
// supplies the clock for the date rule so tests can pin it.
func NewBookingFlow(cat *catalog.Catalog, now func() time.Time) *Flow {
	if now == nil {
		now = time.Now
	}
	return &Flow{
		Kind: FlowBooking,
		Steps: []Step{
			{
				Name: "schedule",
				Rules: []validate.Rule{
					dateOnOrAfter("date", now),
					validate.OneOf("time", cat.TimeSlots, "Please select a time"),
					validate.OneOf("service", cat.ServiceIDs(), "Please select a service"),
					validate.OptionalOneOf("therapist", cat.ProviderIDs(), "Please choose a therapist from our staff"),
				},
			},
			{Name: "notes"},
			{
				Name: "payment",
				Rules: []validate.Rule{
					validate.OneOf("paymentMethod", bookingPaymentMethods, "Please select a payment method"),
				},
			},
		},
		Defaults: map[string]string{
			"paymentMethod": "insurance",
		},
		ResetDelay:     3 * time.Second,
		PaymentMethods: bookingPaymentMethods,
		Amount: func(values map[string]string) int {
			svc, ok := cat.ServiceByID(values["service"])
			if !ok {
				return 0
			}
			return svc.Price
		},
		Summarize: func(values map[string]string) string {
			svc, _ := cat.ServiceByID(values["service"])
			summary := fmt.Sprintf("%s on %s at %s", svc.Name, values["date"], values["time"])
			if p, ok := cat.ProviderByID(values["therapist"]); ok {
				summary += " with " + p.Name
			}
			return summary
		},
		Project: func(values map[string]string) (BookingSummary, bool) {
			svc, ok := cat.ServiceByID(values["service"])
			if !ok {
				return BookingSummary{}, false
			}
			out := BookingSummary{
				Date:    values["date"],
				Time:    values["time"],
				Service: svc.Name,
				Total:   svc.Price,
			}
			if p, ok := cat.ProviderByID(values["therapist"]); ok {
				out.Therapist = p.Name
			}
			return out, true
		},
	}
}

// dateOnOrAfter rejects empty, malformed and past dates. Comparison is
// date-only against the local clock, so booking for later today passes.
func dateOnOrAfter(field string, now func() time.Time) validate.Rule {
	return validate.Rule{
		Field:   field,
		Message: "Please choose today or a later date",
		Check: func(v string) bool {
			d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(v), time.Local)
			if err != nil {
				return false
			}
			t := now().Local()
			today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
			return !d.Before(today)
		},
	}
}
