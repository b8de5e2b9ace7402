package api

import (
	"context"
	"net/url"

	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

// CreateApplication records a past application with the tracking service.
// Blank request fields take the tracker defaults before the call.
func (c *Client) CreateApplication(ctx context.Context, req types.CreateApplicationRequest) (*types.Application, error) {
	var app types.Application
	if err := c.doJSON(ctx, "POST", c.baseURL+"/applications", req.WithDefaults(), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetApplications lists a user's past applications.
func (c *Client) GetApplications(ctx context.Context, userID string) ([]types.Application, error) {
	var apps []types.Application
	endpoint := c.baseURL + "/applications/user/" + url.PathEscape(userID)
	if err := c.doJSON(ctx, "GET", endpoint, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
