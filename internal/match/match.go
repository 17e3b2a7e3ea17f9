// Package match builds therapist shortlists from client preferences.
package match

import (
	"strings"

	"github.com/mindwell/intake-platform/internal/catalog"
)

// Predicate decides whether a provider belongs in a shortlist. Predicates
// compose with And, so new preference dimensions never need new branching
// in the filter itself.
type Predicate func(p catalog.Provider) bool

// Filter returns the providers satisfying pred, preserving catalog order.
func Filter(providers []catalog.Provider, pred Predicate) []catalog.Provider {
	var out []catalog.Provider
	for _, p := range providers {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// And combines predicates; all must hold.
func And(preds ...Predicate) Predicate {
	return func(p catalog.Provider) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// ByGender matches providers whose gender attribute equals preference.
func ByGender(preference string) Predicate {
	return func(p catalog.Provider) bool {
		return p.Gender == preference
	}
}

// BySpecialty matches providers listing a specialty that contains the
// given term, case-insensitively.
func BySpecialty(term string) Predicate {
	term = strings.ToLower(term)
	return func(p catalog.Provider) bool {
		for _, s := range p.Specialties {
			if strings.Contains(strings.ToLower(s), term) {
				return true
			}
		}
		return false
	}
}

// FilterByGender is the preference shortlist shown on the contact form.
// An empty preference suppresses the shortlist entirely rather than
// showing the whole roster, so it returns an empty result.
func FilterByGender(providers []catalog.Provider, preference string) []catalog.Provider {
	if strings.TrimSpace(preference) == "" {
		return []catalog.Provider{}
	}
	return Filter(providers, ByGender(preference))
}
