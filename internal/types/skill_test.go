package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantLevel  string
		structured bool
	}{
		{"Bare string", `"Python"`, "Python", "", false},
		{"Empty string", `""`, "", "", false},
		{"Object with name only", `{"name":"Go"}`, "Go", "", true},
		{"Object with level", `{"id":"s1","name":"Java","level":"expert"}`, "Java", "expert", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Skill
			err := json.Unmarshal([]byte(tt.input), &s)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, s.Name, "should extract the skill name")
			assert.Equal(t, tt.wantLevel, s.Level)
			assert.Equal(t, tt.structured, s.Structured(), "should remember the decoded shape")
		})
	}
}

func TestSkillUnmarshalJSONRejectsOtherShapes(t *testing.T) {
	var s Skill
	err := json.Unmarshal([]byte(`42`), &s)
	assert.Error(t, err, "numbers are not a valid skill shape")
}

func TestSkillRoundTrip(t *testing.T) {
	inputs := []string{
		`["Python","Java"]`,
		`[{"id":"s1","name":"Go","level":"expert"},"SQL"]`,
	}

	for _, input := range inputs {
		var skills []Skill
		require.NoError(t, json.Unmarshal([]byte(input), &skills))

		out, err := json.Marshal(skills)
		require.NoError(t, err)
		assert.JSONEq(t, input, string(out), "heterogeneous skills should round-trip in their original shapes")
	}
}

func TestSkillNames(t *testing.T) {
	skills := []Skill{
		NewSkill("Python"),
		NewStructuredSkill("s1", "Go", "expert"),
		{}, // empty entries are dropped
	}

	assert.Equal(t, []string{"Python", "Go"}, SkillNames(skills))
}
