package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylight-io/psapi-client/pkg/psapi"
)

func TestCollectionsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/collections", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))

		response := psapi.CollectionList{
			Paging: psapi.Paging{Total: 2, Page: 2, PerPage: 25},
			Items: []psapi.Collection{
				{ID: "C0001", Name: "Landscapes", Visibility: psapi.VisibilityEveryone},
				{ID: "C0002", Name: "Portraits", Visibility: psapi.VisibilityPrivate},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := psapi.NewQueryParams()
	params.Page = 2
	params.PerPage = 25

	list, err := client.Collections().List(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, "Landscapes", list.Items[0].Name)
	assert.Equal(t, 2, list.Paging.Total)
}

func TestCollectionsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/collections/C0001", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(psapi.Collection{
			ID:         "C0001",
			Name:       "Landscapes",
			Visibility: psapi.VisibilityEveryone,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	collection, err := client.Collections().Get(context.Background(), "C0001")
	require.NoError(t, err)
	assert.Equal(t, "C0001", collection.ID)
	assert.Equal(t, "Landscapes", collection.Name)
}

func TestCollectionsClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Collections().Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, psapi.IsNotFound(err))
	assert.Contains(t, err.Error(), "Not Found")
}

func TestCollectionsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/collections", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body psapi.CollectionCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Travel", body.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(psapi.Collection{ID: "C0100", Name: body.Name})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	collection, err := client.Collections().Create(context.Background(), &psapi.CollectionCreateRequest{
		Name:       "Travel",
		Visibility: psapi.VisibilityPrivate,
	})
	require.NoError(t, err)
	assert.Equal(t, "C0100", collection.ID)
}

func TestCollectionsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/collections/C0001", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		_ = json.NewEncoder(w).Encode(psapi.Collection{ID: "C0001", Name: "Renamed"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	name := "Renamed"

	collection, err := client.Collections().Update(context.Background(), "C0001", &psapi.CollectionUpdateRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", collection.Name)
}

func TestCollectionsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/collections/C0001", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Collections().Delete(context.Background(), "C0001")
	require.NoError(t, err)
}

func TestCollectionsClient_Children(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/collections/C0001/children", r.URL.Path)

		response := psapi.CollectionChildList{
			Items: []psapi.CollectionChild{
				{Type: "collection", Collection: &psapi.Collection{ID: "C0002", Name: "Nested"}},
				{Type: "gallery", Gallery: &psapi.Gallery{ID: "G0001", Name: "Summer"}},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	children, err := client.Collections().Children(context.Background(), "C0001", nil)
	require.NoError(t, err)
	require.Len(t, children.Items, 2)
	assert.Equal(t, "collection", children.Items[0].Type)
	assert.NotNil(t, children.Items[0].Collection)
	assert.Equal(t, "gallery", children.Items[1].Type)
	assert.NotNil(t, children.Items[1].Gallery)
}

func TestCollectionsClient_SetVisibility(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/collections/C0001/visibility", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, psapi.VisibilityEveryone, body["visibility"])

		_ = json.NewEncoder(w).Encode(psapi.Collection{ID: "C0001", Visibility: body["visibility"]})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	collection, err := client.Collections().SetVisibility(context.Background(), "C0001", psapi.VisibilityEveryone)
	require.NoError(t, err)
	assert.Equal(t, psapi.VisibilityEveryone, collection.Visibility)
}
