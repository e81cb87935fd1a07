//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"inventory-api/internal/model"
)

func productFields(typeID string, serial string) map[string]string {
	return map[string]string{
		"name":            "Laptop",
		"quantity":        "3",
		"description":     "Work laptop",
		"serial_number":   serial,
		"product_type_id": typeID,
	}
}

func listProducts(t *testing.T, client *http.Client, baseURL string) []model.ProductSummary {
	t.Helper()
	resp := doJSON(t, client, http.MethodGet, baseURL+"/api/v1/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []model.ProductSummary
	require.NoError(t, json.Unmarshal(parseBody(t, resp).Data, &products))
	return products
}

func TestProductCRUD(t *testing.T) {
	server := newServer(t)
	client := newClient(t)
	registerUser(t, client, server.URL, "warehouseguy", "wg@example.com")
	typeID := createProductType(t, client, server.URL, "Electronics")

	t.Run("create", func(t *testing.T) {
		resp := doForm(t, client, http.MethodPost, server.URL+"/api/v1/products", productFields(typeID, "SN-100"))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, "Product item added successfully", parseBody(t, resp).Message)
	})

	t.Run("duplicate serial number", func(t *testing.T) {
		resp := doForm(t, client, http.MethodPost, server.URL+"/api/v1/products", productFields(typeID, "SN-100"))
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.Equal(t, []string{"The serial number has already been taken."}, parsed.Errors["serial_number"])
	})

	t.Run("update marks the product sold", func(t *testing.T) {
		products := listProducts(t, client, server.URL)
		require.Len(t, products, 1)

		fields := productFields(typeID, "SN-100")
		fields["has_sold"] = "true"
		resp := doForm(t, client, http.MethodPut, server.URL+"/api/v1/products/"+products[0].ID, fields)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Product updated successfully", parseBody(t, resp).Message)

		products = listProducts(t, client, server.URL)
		require.True(t, products[0].HasSold)
	})

	t.Run("type counts follow the products", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/product-types", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var types []model.ProductTypeSummary
		require.NoError(t, json.Unmarshal(parseBody(t, resp).Data, &types))
		require.Len(t, types, 1)
		require.Equal(t, 1, types[0].ProductsCount)
	})

	t.Run("delete", func(t *testing.T) {
		products := listProducts(t, client, server.URL)
		require.Len(t, products, 1)

		resp := doJSON(t, client, http.MethodDelete, server.URL+"/api/v1/products/"+products[0].ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Product deleted successfully", parseBody(t, resp).Message)
		require.Empty(t, listProducts(t, client, server.URL))
	})
}

func TestProductCrossUserType(t *testing.T) {
	server := newServer(t)

	owner := newClient(t)
	registerUser(t, owner, server.URL, "warehouseguy", "wg@example.com")
	foreignTypeID := createProductType(t, owner, server.URL, "Electronics")

	actor := newClient(t)
	registerUser(t, actor, server.URL, "someoneelse1", "se@example.com")

	resp := doForm(t, actor, http.MethodPost, server.URL+"/api/v1/products", productFields(foreignTypeID, "SN-200"))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	parsed := parseBody(t, resp)
	require.Equal(t, []string{"The selected product type id is invalid."}, parsed.Errors["product_type_id"])
}

func TestDashboard(t *testing.T) {
	server := newServer(t)
	client := newClient(t)
	registerUser(t, client, server.URL, "warehouseguy", "wg@example.com")
	typeID := createProductType(t, client, server.URL, "Electronics")

	fields := productFields(typeID, "SN-300")
	fields["has_sold"] = "true"
	resp := doForm(t, client, http.MethodPost, server.URL+"/api/v1/products", fields)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	me := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/user/me", nil)
	require.Equal(t, http.StatusOK, me.StatusCode)

	var dash model.Dashboard
	require.NoError(t, json.Unmarshal(parseBody(t, me).Data, &dash))
	require.Equal(t, "warehouseguy", dash.Name)
	require.Equal(t, 1, dash.AddedProductTypesCount)
	require.Equal(t, 1, dash.AddedProductsCount)
	require.Equal(t, 1, dash.SoldProductsCount)
	require.Len(t, dash.LastAddedProducts, 1)
	require.Equal(t, "just now", dash.LastAddedProducts[0].CreatedAt)
	require.Equal(t, "just now", dash.HumanTime)
}
