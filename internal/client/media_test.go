package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylight-io/psapi-client/pkg/psapi"
)

func TestMediaClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/media/M0001", r.URL.Path)

		_ = json.NewEncoder(w).Encode(psapi.Media{
			ID:       "M0001",
			FileName: "sunset.jpg",
			MimeType: "image/jpeg",
			FileSize: 2048,
			Width:    6000,
			Height:   4000,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	media, err := client.Media().Get(context.Background(), "M0001")
	require.NoError(t, err)
	assert.Equal(t, "sunset.jpg", media.FileName)
	assert.Equal(t, int64(2048), media.FileSize)
}

func TestMediaClient_Download_BinaryPassthrough(t *testing.T) {
	t.Parallel()

	// JPEG magic bytes followed by junk: not valid JSON on purpose.
	binary := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/media/M0001/download", r.URL.Path)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(binary)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	content, err := client.Media().Download(context.Background(), "M0001")
	require.NoError(t, err)
	assert.Equal(t, binary, content)
}

func TestMediaClient_Upload(t *testing.T) {
	t.Parallel()

	bits := []byte("fake image bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/media", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "G0001", r.MultipartForm.Value["gallery_id"][0])

		file, header, err := r.FormFile("file")
		require.NoError(t, err)

		defer func() { _ = file.Close() }()

		assert.Equal(t, "upload.jpg", header.Filename)

		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, bits, uploaded)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(psapi.Media{ID: "M0100", GalleryID: "G0001", FileName: "upload.jpg"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	media, err := client.Media().Upload(context.Background(), "G0001", "upload.jpg", bits)
	require.NoError(t, err)
	assert.Equal(t, "M0100", media.ID)
	assert.Equal(t, "G0001", media.GalleryID)
}

func TestMediaClient_Metadata(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/psapi/v4.0/media/M0001/metadata", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(psapi.MediaMetadata{
				Title:    "Dusk over the bay",
				Keywords: []string{"sunset", "water"},
			})
		case http.MethodPatch:
			var body psapi.MediaMetadataUpdateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.NotNil(t, body.Caption)

			_ = json.NewEncoder(w).Encode(psapi.MediaMetadata{
				Title:   "Dusk over the bay",
				Caption: *body.Caption,
			})
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	metadata, err := client.Media().GetMetadata(ctx, "M0001")
	require.NoError(t, err)
	assert.Equal(t, "Dusk over the bay", metadata.Title)
	assert.Equal(t, []string{"sunset", "water"}, metadata.Keywords)

	caption := "Taken at 19:40"

	metadata, err = client.Media().UpdateMetadata(ctx, "M0001", &psapi.MediaMetadataUpdateRequest{
		Caption: &caption,
	})
	require.NoError(t, err)
	assert.Equal(t, "Taken at 19:40", metadata.Caption)
}

func TestMediaClient_Move(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/media/M0001/move", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "G0002", body["gallery_id"])

		_ = json.NewEncoder(w).Encode(psapi.Media{ID: "M0001", GalleryID: "G0002"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	media, err := client.Media().Move(context.Background(), "M0001", "G0002")
	require.NoError(t, err)
	assert.Equal(t, "G0002", media.GalleryID)
}
