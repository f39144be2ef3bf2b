package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

type fakeLister struct {
	strains []*models.Strain
	err     error
	storeID int
}

func (f *fakeLister) ListStrains(_ context.Context, storeID int) ([]*models.Strain, error) {
	f.storeID = storeID
	return f.strains, f.err
}

func TestHealth(t *testing.T) {
	handlers := NewHandlers(&fakeLister{})
	server := httptest.NewServer(handlers.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListStrains(t *testing.T) {
	strain := models.NewStrain("A1", 5, 3)
	strain.SetPricing(10.00, 12.00)
	strain.SetListing("Tangerine Dream", "https://www.sqdc.ca/p/A1")

	lister := &fakeLister{strains: []*models.Strain{strain}}
	handlers := NewHandlers(lister)
	server := httptest.NewServer(handlers.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/strains?store_id=42")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body StrainsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 42, body.StoreID)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Strains, 1)
	assert.Equal(t, "A1", body.Strains[0].SKU)
	assert.Equal(t, 42, lister.storeID)
}

func TestListStrainsMissingStoreID(t *testing.T) {
	handlers := NewHandlers(&fakeLister{})
	server := httptest.NewServer(handlers.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/strains")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListStrainsStoreError(t *testing.T) {
	handlers := NewHandlers(&fakeLister{err: errors.New("database down")})
	server := httptest.NewServer(handlers.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/strains?store_id=42")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
