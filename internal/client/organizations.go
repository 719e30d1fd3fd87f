package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// OrganizationsClient implements psapi.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *internalhttp.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *internalhttp.Client) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
	}
}

// Get implements psapi.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context, orgID string) (*psapi.Organization, error) {
	path := "/organizations/" + orgID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	var org psapi.Organization

	err = json.Unmarshal(resp.Body, &org)
	if err != nil {
		return nil, fmt.Errorf("parsing organization: %w", err)
	}

	return &org, nil
}

// ListMembers implements psapi.OrganizationsClient.ListMembers.
func (c *OrganizationsClient) ListMembers(ctx context.Context, orgID string, params *psapi.QueryParams) (*psapi.OrgMemberList, error) {
	path := "/organizations/" + orgID + "/members"

	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing organization members: %w", err)
	}

	var list psapi.OrgMemberList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing organization members: %w", err)
	}

	return &list, nil
}
