package sqdc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStoreInventory(t *testing.T) {
	var gotBody map[string]int
	var gotCookie, gotWebsiteID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/olivestoreinventory/getmystoreinventory", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		gotCookie = r.Header.Get("Cookie")
		gotWebsiteID = r.Header.Get("WebsiteId")

		// No Content-Type header on purpose: the body must still decode
		// even when the server declares a loose content type.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"InventoryItems": []map[string]interface{}{
				{"Sku": "A1", "Quantity": map[string]int{"Quantity": 5, "AvailableToPromiseQuantity": 3}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(map[string]string{"session": "abc"}, 42, WithBaseURL(server.URL))
	items, err := client.GetStoreInventory(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "A1", items[0].Sku)
	assert.Equal(t, 5, items[0].Quantity.Quantity)
	assert.Equal(t, 3, items[0].Quantity.AvailableToPromiseQuantity)

	assert.Equal(t, map[string]int{"InventoryLocationId": 42}, gotBody)
	assert.Contains(t, gotCookie, "SelectedStore=42")
	assert.Contains(t, gotCookie, "session=abc")
	assert.NotEmpty(t, gotWebsiteID)
}

func TestCalculatePricesSuffixesSKUs(t *testing.T) {
	var gotBody map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/product/calculatePrices", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ProductPrices": []map[string]interface{}{
				{
					"ProductId":        "A1-P",
					"DisplayPrice":     "$10.50",
					"DefaultListPrice": "$12.00",
					"VariantPrices": []map[string]string{
						{"DisplayPrice": "$9.99", "ListPrice": "$11.00"},
					},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(nil, 42, WithBaseURL(server.URL))
	prices, err := client.CalculatePrices(context.Background(), []string{"A1", "B2"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A1-P", "B2-P"}, gotBody["products"])

	require.Len(t, prices, 1)
	assert.Equal(t, "A1-P", prices[0].ProductID)
	assert.Equal(t, "$10.50", prices[0].DisplayPrice)
	require.Len(t, prices[0].VariantPrices, 1)
	assert.Equal(t, "$9.99", prices[0].VariantPrices[0].DisplayPrice)
}

func TestNonSuccessStatusIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("session expired"))
	}))
	defer server.Close()

	client := NewClient(nil, 42, WithBaseURL(server.URL))

	_, err := client.GetStoreInventory(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "olivestoreinventory/getmystoreinventory", apiErr.Endpoint)
	assert.Contains(t, apiErr.Body, "session expired")

	_, err = client.CalculatePrices(context.Background(), []string{"A1"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "product/calculatePrices", apiErr.Endpoint)
}

func TestWithRefererOverridesDefault(t *testing.T) {
	var gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("Referer")
		json.NewEncoder(w).Encode(map[string]interface{}{"InventoryItems": []interface{}{}})
	}))
	defer server.Close()

	listingURL := DefaultFilters().ListingURL()
	client := NewClient(nil, 42, WithBaseURL(server.URL), WithReferer(listingURL))

	_, err := client.GetStoreInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, listingURL, gotReferer)
}
