package types

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Job is one recommended job returned by the jobs service.
type Job struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Company        string  `json:"company"`
	Location       string  `json:"location"`
	ApplicationURL string  `json:"applicationUrl"`
	MatchScore     float64 `json:"matchScore"`
	Description    string  `json:"description,omitempty"`
	PostedDate     string  `json:"postedDate,omitempty"`
}

// ClampedScore returns MatchScore clamped to [0, 1]. The score drives a
// 0-100% bar, and upstream services are not trusted to stay in range.
func (j *Job) ClampedScore() float64 {
	return math.Min(1, math.Max(0, j.MatchScore))
}

// MatchPercent returns the clamped score as a 0-100 integer.
func (j *Job) MatchPercent() int {
	return int(math.Round(j.ClampedScore() * 100))
}

// JobPreferences holds the user's job search preferences.
// Replace-only semantics: the store never merges preference updates.
type JobPreferences struct {
	PreferredRole string   `json:"preferredRole" validate:"required,min=1"`
	Location      string   `json:"location"`
	OpenToRemote  bool     `json:"openToRemote"`
	ContractTypes []string `json:"contractTypes" validate:"required,min=1,dive,required"`
	MinSalary     int      `json:"minSalary,omitempty" validate:"gte=0"`
	MaxSalary     int      `json:"maxSalary,omitempty" validate:"omitempty,gtefield=MinSalary"`
}

// Complete reports whether the preferences satisfy the onboarding gate:
// a preferred role and at least one contract type.
func (p *JobPreferences) Complete() bool {
	if p == nil {
		return false
	}
	return p.PreferredRole != "" && len(p.ContractTypes) > 0
}

// Validate validates the JobPreferences using the validator.
func (p *JobPreferences) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ApplicationStatus is the lifecycle state of a submitted application.
type ApplicationStatus string

// Application statuses reported by the backend.
const (
	ApplicationDraft         ApplicationStatus = "DRAFT"
	ApplicationSubmitted     ApplicationStatus = "SUBMITTED"
	ApplicationPartialAction ApplicationStatus = "PARTIAL_ACTION_REQUIRED"
	ApplicationFailed        ApplicationStatus = "FAILED_NOT_SUBMITTED"
)

// Application is one past job application.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"jobId"`
	JobTitle  string            `json:"jobTitle"`
	Company   string            `json:"company"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt string            `json:"createdAt"`
}

// CreateApplicationRequest records a manually tracked application.
// Status here is the tracker vocabulary (applied, interviewing, offered,
// rejected); the service maps it onto the lifecycle states.
type CreateApplicationRequest struct {
	UserID  string `json:"userId,omitempty"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	Source  string `json:"source"`
}

// WithDefaults fills blank fields the way the tracker form does, so a
// partially filled entry still lands.
func (r CreateApplicationRequest) WithDefaults() CreateApplicationRequest {
	if strings.TrimSpace(r.Company) == "" {
		r.Company = "Unknown Company"
	}
	if strings.TrimSpace(r.Role) == "" {
		r.Role = "Unknown Role"
	}
	if r.Status == "" {
		r.Status = "applied"
	}
	if r.Source == "" {
		r.Source = "manual"
	}
	return r
}
