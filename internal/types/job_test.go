package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobClampedScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected float64
	}{
		{"In range", 0.73, 0.73},
		{"Zero", 0, 0},
		{"One", 1, 1},
		{"Above range", 1.4, 1},
		{"Below range", -0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := Job{MatchScore: tt.score}
			assert.InDelta(t, tt.expected, j.ClampedScore(), 1e-9)
		})
	}
}

func TestJobMatchPercent(t *testing.T) {
	j := Job{MatchScore: 0.876}
	assert.Equal(t, 88, j.MatchPercent())

	overflow := Job{MatchScore: 3.5}
	assert.Equal(t, 100, overflow.MatchPercent(), "out-of-range scores must not overflow the percent bar")
}

func TestJobPreferencesComplete(t *testing.T) {
	tests := []struct {
		name     string
		prefs    *JobPreferences
		expected bool
	}{
		{"Nil preferences", nil, false},
		{"Missing role", &JobPreferences{ContractTypes: []string{"full-time"}}, false},
		{"Missing contract types", &JobPreferences{PreferredRole: "Engineer"}, false},
		{"Complete", &JobPreferences{PreferredRole: "Engineer", ContractTypes: []string{"full-time"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.prefs.Complete())
		})
	}
}

func TestCreateApplicationRequestWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		req      CreateApplicationRequest
		expected CreateApplicationRequest
	}{
		{
			"Empty request",
			CreateApplicationRequest{},
			CreateApplicationRequest{Company: "Unknown Company", Role: "Unknown Role", Status: "applied", Source: "manual"},
		},
		{
			"Whitespace company",
			CreateApplicationRequest{Company: "  ", Role: "Engineer"},
			CreateApplicationRequest{Company: "Unknown Company", Role: "Engineer", Status: "applied", Source: "manual"},
		},
		{
			"Fully specified",
			CreateApplicationRequest{UserID: "u1", Company: "Acme", Role: "Engineer", Status: "offered", Source: "import"},
			CreateApplicationRequest{UserID: "u1", Company: "Acme", Role: "Engineer", Status: "offered", Source: "import"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.WithDefaults())
		})
	}
}

func TestJobPreferencesValidate(t *testing.T) {
	valid := JobPreferences{
		PreferredRole: "Backend Engineer",
		Location:      "Cape Town",
		ContractTypes: []string{"full-time", "contract"},
		MinSalary:     40000,
		MaxSalary:     60000,
	}
	assert.NoError(t, valid.Validate())

	missingRole := JobPreferences{ContractTypes: []string{"full-time"}}
	assert.Error(t, missingRole.Validate())

	invertedSalary := JobPreferences{
		PreferredRole: "Engineer",
		ContractTypes: []string{"full-time"},
		MinSalary:     80000,
		MaxSalary:     50000,
	}
	assert.Error(t, invertedSalary.Validate(), "max salary below min salary should fail validation")
}
