package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

// DefaultJobLimit is how many recommendations to request when the caller
// does not say.
const DefaultJobLimit = 50

// GetProfile fetches the stored profile for a user.
func (c *Client) GetProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	var profile types.UserProfile
	err := c.doJSON(ctx, "GET", c.baseURL+"/profile/"+url.PathEscape(userID), nil, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile sends a partial profile update to the profile service.
func (c *Client) UpdateProfile(ctx context.Context, userID string, partial types.ProfileUpdate) error {
	return c.doJSON(ctx, "PUT", c.baseURL+"/profile/"+url.PathEscape(userID), partial, nil)
}

// GetJobRecommendations fetches ranked job matches for a user. A limit of
// zero or less falls back to DefaultJobLimit.
func (c *Client) GetJobRecommendations(ctx context.Context, userID string, limit int) ([]types.Job, error) {
	if limit <= 0 {
		limit = DefaultJobLimit
	}
	endpoint := c.baseURL + "/jobs/recommendations/" + url.PathEscape(userID) +
		"?limit=" + strconv.Itoa(limit)

	var jobs []types.Job
	if err := c.doJSON(ctx, "GET", endpoint, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ExtractCV uploads a resume file to the AI extraction service and returns
// the structured data it recovered.
func (c *Client) ExtractCV(ctx context.Context, filename string, content []byte) (*types.CVExtractedData, error) {
	return c.postExtraction(ctx, c.aiURL+"/agents/extract-cv", func(mw *multipart.Writer) error {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			return err
		}
		_, err = part.Write(content)
		return err
	})
}

// AutofillCV extracts structured data from pasted resume text, no file
// involved. Same response shape as ExtractCV.
func (c *Client) AutofillCV(ctx context.Context, textContent string) (*types.CVExtractedData, error) {
	return c.postExtraction(ctx, c.aiURL+"/agents/autofill", func(mw *multipart.Writer) error {
		return mw.WriteField("text_content", textContent)
	})
}

// postExtraction posts a multipart form to an extraction endpoint and
// decodes the structured CV data it returns.
func (c *Client) postExtraction(ctx context.Context, endpoint string, fill func(*multipart.Writer) error) (*types.CVExtractedData, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := fill(mw); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}

	var extracted types.CVExtractedData
	if err := json.Unmarshal(raw, &extracted); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &extracted, nil
}
