package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/meta"
	"github.com/stretchr/testify/require"
)

const testCategoryID = "cat-1"

func TestNewCategoriesClient(t *testing.T) {
	client := NewCategoriesClient(testAPIAddress, testHTTPClient)
	require.IsType(t, &categoriesClient{}, client)
	requireBaseClient(t, client.(*categoriesClient).BaseClient)
}

func TestCategoriesClientCreate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/categories", r.URL.Path)
				category := sdk.Category{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&category))
				require.Equal(t, "Laptops", category.Name)
				w.WriteHeader(http.StatusCreated)
				fmt.Fprintf(
					w,
					`{"metadata":{"id":%q},"name":"Laptops"}`,
					testCategoryID,
				)
			},
		),
	)
	defer server.Close()
	client := NewCategoriesClient(server.URL, testHTTPClient)
	created, err := client.Create(
		context.Background(),
		sdk.Category{Name: "Laptops"},
	)
	require.NoError(t, err)
	require.Equal(t, testCategoryID, created.ID)
}

func TestCategoriesClientList(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/categories", r.URL.Path)
				fmt.Fprintln(
					w,
					`{"metadata":{},`+
						`"items":[{"metadata":{"id":"cat-1"},"name":"Laptops"}]}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewCategoriesClient(server.URL, testHTTPClient)
	categories, err := client.List(
		context.Background(),
		CategoriesSelector{},
		meta.ListOptions{},
	)
	require.NoError(t, err)
	require.Len(t, categories.Items, 1)
	require.Equal(t, "Laptops", categories.Items[0].Name)
}

func TestCategoriesClientGet(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(
					t,
					fmt.Sprintf("/categories/%s", testCategoryID),
					r.URL.Path,
				)
				fmt.Fprintf(
					w,
					`{"metadata":{"id":%q},"name":"Laptops"}`,
					testCategoryID,
				)
			},
		),
	)
	defer server.Close()
	client := NewCategoriesClient(server.URL, testHTTPClient)
	category, err := client.Get(context.Background(), testCategoryID)
	require.NoError(t, err)
	require.Equal(t, testCategoryID, category.ID)
}

func TestCategoriesClientUpdate(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPut, r.Method)
				require.Equal(
					t,
					fmt.Sprintf("/categories/%s", testCategoryID),
					r.URL.Path,
				)
				fmt.Fprintf(
					w,
					`{"metadata":{"id":%q},"name":"Workstations"}`,
					testCategoryID,
				)
			},
		),
	)
	defer server.Close()
	client := NewCategoriesClient(server.URL, testHTTPClient)
	updated, err := client.Update(
		context.Background(),
		sdk.Category{
			ObjectMeta: meta.ObjectMeta{ID: testCategoryID},
			Name:       "Workstations",
		},
	)
	require.NoError(t, err)
	require.Equal(t, "Workstations", updated.Name)
}

func TestCategoriesClientDelete(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(
					t,
					fmt.Sprintf("/categories/%s", testCategoryID),
					r.URL.Path,
				)
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer server.Close()
	client := NewCategoriesClient(server.URL, testHTTPClient)
	require.NoError(t, client.Delete(context.Background(), testCategoryID))
}
