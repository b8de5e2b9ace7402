package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidPayloads(t *testing.T) {
	tests := []struct {
		schema  string
		payload string
	}{
		{MatchScore, `{"ats_score": 72, "match_score": 0.8, "strengths": ["Go"], "gaps": [], "keywords_to_add": ["grpc"], "recommended_bullets": []}`},
		{MatchScore, `{"ats_score": 0, "match_score": 0}`},
		{TailoredResume, `{"tailored_resume": "SUMMARY\nBuilt things."}`},
		{CoverLetter, `{"cover_letter": "Dear Hiring Manager"}`},
		{Email, `{"email": "Hello", "subject": "Application"}`},
		{Chat, `{"response": "Here is my advice."}`},
	}

	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			assert.NoError(t, Validate(tt.schema, []byte(tt.payload)))
		})
	}
}

func TestValidate_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		payload string
	}{
		{"missing ats_score", MatchScore, `{"match_score": 0.8}`},
		{"ats_score out of range", MatchScore, `{"ats_score": 250, "match_score": 0.8}`},
		{"ats_score wrong type", MatchScore, `{"ats_score": "high", "match_score": 0.8}`},
		{"empty tailored resume", TailoredResume, `{"tailored_resume": ""}`},
		{"missing cover letter", CoverLetter, `{}`},
		{"missing email body", Email, `{"subject": "hello"}`},
		{"chat response wrong type", Chat, `{"response": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.schema, []byte(tt.payload))
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected a structured validation error")
			assert.Equal(t, tt.schema, ve.Schema)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nonexistent", []byte(`{}`))
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}

func TestValidate_MalformedPayload(t *testing.T) {
	err := Validate(Chat, []byte("not json"))
	assert.Error(t, err)
}
