package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lee777maker/Job-Applier-sub000/internal/schemas"
	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

// Generation defaults applied when the caller leaves them empty.
const (
	DefaultStyle         = "professional"
	DefaultTone          = "professional"
	DefaultLength        = "standard"
	DefaultRecipientType = "recruiter"
)

// postValidated POSTs a JSON body to the AI service and checks the raw
// response against the named schema before decoding. A payload that fails
// validation never reaches the caller's types.
func (c *Client) postValidated(ctx context.Context, endpoint string, body any, schema string, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.aiURL+endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServiceError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}
	if err := schemas.Validate(schema, raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// GetMatchScore scores a profile against a job description. resumeText is
// optional and preferred over the profile's stored text when present.
func (c *Client) GetMatchScore(ctx context.Context, profile *types.UserProfile, jobDescription, resumeText string) (*types.MatchScoreResult, error) {
	req := types.MatchScoreRequest{
		UserProfile:    profile,
		JobDescription: jobDescription,
		ResumeText:     resumeText,
	}

	var result types.MatchScoreResult
	if err := c.postValidated(ctx, "/agents/match-score", req, schemas.MatchScore, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TailorResume rewrites a resume for a specific job description. Empty
// style, tone, or length fall back to the generation defaults.
func (c *Client) TailorResume(ctx context.Context, originalCV, jobDescription string, profile *types.UserProfile, style, tone, length string) (*types.TailoredResume, error) {
	if style == "" {
		style = DefaultStyle
	}
	if tone == "" {
		tone = DefaultTone
	}
	if length == "" {
		length = DefaultLength
	}
	req := types.TailorResumeRequest{
		OriginalCV:     originalCV,
		JobDescription: jobDescription,
		UserProfile:    profile,
		Style:          style,
		Tone:           tone,
		Length:         length,
	}

	var result types.TailoredResume
	if err := c.postValidated(ctx, "/agents/tailor-resume", req, schemas.TailoredResume, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateCoverLetter writes a cover letter for a job description.
func (c *Client) GenerateCoverLetter(ctx context.Context, jobDescription string, profile *types.UserProfile, companyName string) (string, error) {
	req := types.CoverLetterRequest{
		JobDescription: jobDescription,
		UserProfile:    profile,
		CompanyName:    companyName,
	}

	var result struct {
		CoverLetter string `json:"cover_letter"`
	}
	if err := c.postValidated(ctx, "/agents/generate-cover-letter", req, schemas.CoverLetter, &result); err != nil {
		return "", err
	}
	return result.CoverLetter, nil
}

// GenerateEmail writes an outreach email. An empty recipientType defaults
// to addressing a recruiter.
func (c *Client) GenerateEmail(ctx context.Context, jobDescription string, profile *types.UserProfile, recipientType string) (string, error) {
	if recipientType == "" {
		recipientType = DefaultRecipientType
	}
	req := types.EmailRequest{
		JobDescription: jobDescription,
		UserProfile:    profile,
		RecipientType:  recipientType,
	}

	var result struct {
		Email string `json:"email"`
	}
	if err := c.postValidated(ctx, "/agents/generate-email", req, schemas.Email, &result); err != nil {
		return "", err
	}
	return result.Email, nil
}

// Chat sends one message to the assistant along with optional context and
// prior history, returning the assistant's reply text.
func (c *Client) Chat(ctx context.Context, message string, chatContext any, history []types.ChatMessage) (string, error) {
	req := types.ChatRequest{
		Message: message,
		Context: chatContext,
		History: history,
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := c.postValidated(ctx, "/agents/neilwe-chat", req, schemas.Chat, &result); err != nil {
		return "", err
	}
	return result.Response, nil
}
