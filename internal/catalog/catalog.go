package catalog

import "strings"

// Provider is a therapist on staff.
type Provider struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Gender      string   `json:"gender"`
	Specialties []string `json:"specialties"`
}

// Service is a bookable session type with a flat self-pay price.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

// DocumentType classifies a searchable document.
type DocumentType string

const (
	DocTherapist DocumentType = "therapist"
	DocService   DocumentType = "service"
	DocLocation  DocumentType = "location"
	DocFAQ       DocumentType = "faq"
)

// SearchDocument is one entry in the site search catalog.
type SearchDocument struct {
	ID          string       `json:"id"`
	Type        DocumentType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`

	keywordText string
}

// KeywordText returns the lowercased concatenation of title, description
// and category used for substring matching. Computed once per document.
func (d *SearchDocument) KeywordText() string {
	if d.keywordText == "" {
		d.keywordText = strings.ToLower(d.Title + " " + d.Description + " " + d.Category)
	}
	return d.keywordText
}

// Catalog is the read-only reference data snapshot supplied to the core at
// initialization. The core never mutates it.
type Catalog struct {
	Providers       []Provider
	Services        []Service
	Documents       []SearchDocument
	TimeSlots       []string
	ContactServices []string
	Treatments      []string
}

// ServiceByID returns the booking service with the given id.
func (c *Catalog) ServiceByID(id string) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ProviderByID returns the therapist with the given id.
func (c *Catalog) ProviderByID(id string) (Provider, bool) {
	for _, p := range c.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}

// ProviderIDs returns the ids of the therapists in catalog order.
func (c *Catalog) ProviderIDs() []string {
	ids := make([]string, len(c.Providers))
	for i, p := range c.Providers {
		ids[i] = p.ID
	}
	return ids
}

// ServiceIDs returns the ids of the bookable services in catalog order.
func (c *Catalog) ServiceIDs() []string {
	ids := make([]string, len(c.Services))
	for i, s := range c.Services {
		ids[i] = s.ID
	}
	return ids
}
