package intake

import (
	"fmt"
	"time"

	"github.com/mindwell/intake-platform/internal/catalog"
	"github.com/mindwell/intake-platform/internal/validate"
)

// selfPayRate is the flat consultation price charged when a contact
// request selects self-pay.
const selfPayRate = 150

// Payment method enums differ between flows; sliding-scale is only
// offered on the contact form.
var (
	contactPaymentMethods = []string{"insurance", "self-pay", "eap", "sliding-scale"}
	bookingPaymentMethods = []string{"insurance", "self-pay", "eap"}
)

// Step is one data-entry screen of a flow.
type Step struct {
	Name  string
	Rules []validate.Rule
}

// Flow is the immutable definition of one intake flow: its steps and
// rules, seed values, payment branch and completion behavior. Flow
// definitions are built once at startup and shared by every session of
// that kind.
type Flow struct {
	Kind       FlowKind
	Steps      []Step
	Defaults   map[string]string
	ResetDelay time.Duration

	// PaymentMethods lists the accepted paymentMethod values; a flow
	// with none never charges. Amount prices the self-pay branch.
	PaymentMethods []string
	Amount         func(values map[string]string) int

	// Summarize renders the one-line summary carried by the completion
	// event. Project, when set, computes the on-demand review summary
	// shown before confirmation.
	Summarize func(values map[string]string) string
	Project   func(values map[string]string) (BookingSummary, bool)
}

// StepCount reports the number of data-entry steps.
func (f *Flow) StepCount() int {
	return len(f.Steps)
}

// Validate runs the rules of step k (1-based) against the field values.
func (f *Flow) Validate(step int, values map[string]string) map[string]string {
	if step < 1 || step > len(f.Steps) {
		return map[string]string{}
	}
	return validate.ValidateStep(f.Steps[step-1].Rules, values)
}

// NewContactFlow builds the single-step consultation request flow.
func NewContactFlow(cat *catalog.Catalog) *Flow {
	return &Flow{
		Kind: FlowContact,
		Steps: []Step{{
			Name: "details",
			Rules: []validate.Rule{
				validate.Required("name", "Name is required"),
				validate.Required("email", "Email is required"),
				validate.Email("email"),
				validate.Phone("phone"),
				validate.OptionalOneOf("service", cat.ContactServices, "Please select a valid service"),
				validate.OptionalOneOf("gender", []string{"male", "female", "non-binary", "prefer-not-to-say"}, "Please select a valid option"),
				validate.OptionalOneOf("employmentStatus", []string{
					"employed-full-time", "employed-part-time", "self-employed",
					"unemployed", "student", "retired", "other",
				}, "Please select a valid option"),
				validate.OptionalOneOf("therapistGenderPreference", []string{"male", "female"}, "Please select a valid option"),
				validate.OptionalOneOf("urgency", []string{"routine", "urgent", "crisis"}, "Please select a valid option"),
				validate.OneOf("paymentMethod", contactPaymentMethods, "Please select a payment method"),
			},
		}},
		Defaults: map[string]string{
			"urgency":       "routine",
			"paymentMethod": "insurance",
		},
		ResetDelay:     5 * time.Second,
		PaymentMethods: contactPaymentMethods,
		Amount: func(map[string]string) int {
			return selfPayRate
		},
		Summarize: func(values map[string]string) string {
			return fmt.Sprintf("Consultation request from %s <%s>, urgency %s",
				values["name"], values["email"], values["urgency"])
		},
	}
}

// NewTestimonialFlow builds the single-step testimonial submission flow.
func NewTestimonialFlow(cat *catalog.Catalog) *Flow {
	return &Flow{
		Kind: FlowTestimonial,
		Steps: []Step{{
			Name: "testimonial",
			Rules: []validate.Rule{
				validate.Required("name", "Name is required"),
				validate.Required("email", "Email is required"),
				validate.Email("email"),
				validate.OneOf("treatment", cat.Treatments, "Please select your treatment type"),
				validate.Required("testimonial", "Please share your experience"),
				validate.MinLength("testimonial", 50, "Please provide at least 50 characters"),
				validate.Rating("rating"),
			},
		}},
		Defaults: map[string]string{
			"rating": "5",
		},
		ResetDelay: 5 * time.Second,
		Summarize: func(values map[string]string) string {
			return fmt.Sprintf("Testimonial from %s, %s rated %s/5",
				values["name"], values["treatment"], values["rating"])
		},
	}
}
