package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/intake-platform/internal/catalog"
)

func TestShortlistByGender(t *testing.T) {
	h := NewTherapistsHandler(catalog.Default(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/therapists?gender=female", nil)
	rec := httptest.NewRecorder()
	h.Shortlist(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Preference string             `json:"preference"`
		Therapists []catalog.Provider `json:"therapists"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Therapists, 3)
	assert.Equal(t, "Dr. Sarah Mitchell", resp.Therapists[0].Name)
}

func TestShortlistWithoutPreferenceIsEmpty(t *testing.T) {
	h := NewTherapistsHandler(catalog.Default(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/therapists", nil)
	rec := httptest.NewRecorder()
	h.Shortlist(rec, req)

	var resp struct {
		Therapists []catalog.Provider `json:"therapists"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Therapists)
	assert.Empty(t, resp.Therapists)
}

func TestServicesCatalog(t *testing.T) {
	h := NewTherapistsHandler(catalog.Default(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/services", nil)
	rec := httptest.NewRecorder()
	h.Services(rec, req)

	var resp struct {
		Services  []catalog.Service `json:"services"`
		TimeSlots []string          `json:"timeSlots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 4)
	assert.Equal(t, 150, resp.Services[0].Price)
	assert.Len(t, resp.TimeSlots, 8)
}
