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

func TestGalleriesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/galleries", r.URL.Path)

		response := psapi.GalleryList{
			Paging: psapi.Paging{Total: 1, Page: 1, PerPage: 10},
			Items: []psapi.Gallery{
				{ID: "G0001", Name: "Summer 2026", MediaCount: 42},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	list, err := client.Galleries().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Summer 2026", list.Items[0].Name)
	assert.Equal(t, 42, list.Items[0].MediaCount)
}

func TestGalleriesClient_CreateUpdateDelete(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/psapi/v4.0/galleries", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var body psapi.GalleryCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(psapi.Gallery{ID: "G0100", Name: body.Name, ParentID: body.ParentID})
	})
	mux.HandleFunc("/psapi/v4.0/galleries/G0100", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			_ = json.NewEncoder(w).Encode(psapi.Gallery{ID: "G0100", Name: "Renamed"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	gallery, err := client.Galleries().Create(ctx, &psapi.GalleryCreateRequest{
		Name:     "Autumn",
		ParentID: "C0001",
	})
	require.NoError(t, err)
	assert.Equal(t, "G0100", gallery.ID)
	assert.Equal(t, "C0001", gallery.ParentID)

	name := "Renamed"

	gallery, err = client.Galleries().Update(ctx, "G0100", &psapi.GalleryUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", gallery.Name)

	err = client.Galleries().Delete(ctx, "G0100")
	require.NoError(t, err)
}

func TestGalleriesClient_MediaMembership(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/psapi/v4.0/galleries/G0001/media", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			response := psapi.MediaList{
				Items: []psapi.Media{{ID: "M0001", FileName: "sunset.jpg"}},
			}
			_ = json.NewEncoder(w).Encode(response)
		case http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "M0002", body["media_id"])
			w.WriteHeader(http.StatusCreated)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/psapi/v4.0/galleries/G0001/media/M0001", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	media, err := client.Galleries().ListMedia(ctx, "G0001", nil)
	require.NoError(t, err)
	require.Len(t, media.Items, 1)
	assert.Equal(t, "sunset.jpg", media.Items[0].FileName)

	err = client.Galleries().AddMedia(ctx, "G0001", "M0002")
	require.NoError(t, err)

	err = client.Galleries().RemoveMedia(ctx, "G0001", "M0001")
	require.NoError(t, err)
}

func TestGalleriesClient_SetKeyImage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/galleries/G0001/key-image", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		_ = json.NewEncoder(w).Encode(psapi.Gallery{ID: "G0001", KeyImageID: "M0005"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	gallery, err := client.Galleries().SetKeyImage(context.Background(), "G0001", "M0005")
	require.NoError(t, err)
	assert.Equal(t, "M0005", gallery.KeyImageID)
}

func TestGalleriesClient_CreateValidationError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":[{"title":"Invalid field"},{"title":"Missing param"}]}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Galleries().Create(context.Background(), &psapi.GalleryCreateRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid field | Missing param")
}
