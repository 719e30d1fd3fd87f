package psapi

import (
	"net/url"
	"strconv"
)

// QueryParams represents common query parameters for list and search calls.
type QueryParams struct {
	Page    int
	PerPage int
	Sort    string
	// Filters holds endpoint-specific parameters keyed by name. Values pass
	// through to the query string unfiltered: empty strings are kept, which
	// matches what the remote API receives from the other client libraries.
	// Form-encoded login bodies use EncodeForm instead, which drops empties.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithFilter adds a filter value and returns the params for chaining.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], value)

	return q
}

// ToValues converts the params to url.Values. Values are percent-encoded by
// url.Values.Encode at request-build time; empty strings are not dropped.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	for key, vals := range q.Filters {
		for _, val := range vals {
			values.Add(key, val)
		}
	}

	return values
}

// EncodeForm builds url.Values for a form-encoded body, dropping any field
// whose value is empty. The login endpoint relies on absent keys rather than
// empty ones (an omitted org_id must not be sent as "org_id="). This is
// deliberately a separate helper from QueryParams.ToValues, which keeps
// empty values.
func EncodeForm(fields map[string]string) url.Values {
	form := url.Values{}

	for key, value := range fields {
		if value == "" {
			continue
		}

		form.Set(key, value)
	}

	return form
}
