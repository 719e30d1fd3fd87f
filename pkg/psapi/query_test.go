package psapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skylight-io/psapi-client/pkg/psapi"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("pagination and sort", func(t *testing.T) {
		t.Parallel()

		params := psapi.NewQueryParams()
		params.Page = 3
		params.PerPage = 50
		params.Sort = "-created_at"

		values := params.ToValues()
		assert.Equal(t, "3", values.Get("page"))
		assert.Equal(t, "50", values.Get("per_page"))
		assert.Equal(t, "-created_at", values.Get("sort"))
	})

	t.Run("zero values omitted", func(t *testing.T) {
		t.Parallel()

		values := psapi.NewQueryParams().ToValues()
		assert.Empty(t, values)
	})

	t.Run("empty filter values kept", func(t *testing.T) {
		t.Parallel()

		params := psapi.NewQueryParams().WithFilter("visibility", "")

		values := params.ToValues()
		_, present := values["visibility"]
		assert.True(t, present, "empty filter values must survive to the query string")
		assert.Equal(t, "visibility=", values.Encode())
	})

	t.Run("repeated filter values", func(t *testing.T) {
		t.Parallel()

		params := psapi.NewQueryParams().
			WithFilter("tag", "sunset").
			WithFilter("tag", "beach")

		values := params.ToValues()
		assert.Equal(t, []string{"sunset", "beach"}, values["tag"])
	})

	t.Run("values are percent-encoded by Encode", func(t *testing.T) {
		t.Parallel()

		params := psapi.NewQueryParams().WithFilter("terms", "black&white")

		assert.Equal(t, "terms=black%26white", params.ToValues().Encode())
	})
}

func TestEncodeForm(t *testing.T) {
	t.Parallel()

	t.Run("drops empty values", func(t *testing.T) {
		t.Parallel()

		form := psapi.EncodeForm(map[string]string{
			"email":    "user@example.com",
			"password": "secret",
			"mode":     "token",
			"org_id":   "",
		})

		assert.Equal(t, "user@example.com", form.Get("email"))
		assert.Equal(t, "token", form.Get("mode"))

		_, present := form["org_id"]
		assert.False(t, present, "empty fields must be absent, not sent as key=")
	})

	t.Run("keeps non-empty values", func(t *testing.T) {
		t.Parallel()

		form := psapi.EncodeForm(map[string]string{
			"org_id": "O123",
		})

		assert.Equal(t, "O123", form.Get("org_id"))
	})

	t.Run("all empty yields empty form", func(t *testing.T) {
		t.Parallel()

		form := psapi.EncodeForm(map[string]string{"a": "", "b": ""})
		assert.Empty(t, form)
	})
}
