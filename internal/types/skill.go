package types

import (
	"encoding/json"
	"fmt"
)

// Skill represents one entry of a profile's skills array. The backend emits
// skills in two shapes in the same array: a bare JSON string, or a structured
// record {id, name, level}. Skill accepts both on decode and preserves the
// shape it was decoded from, so a loaded profile round-trips byte-stable.
//
// Consumers must never look at the fields directly to display a skill; use
// Name via the struct field, which is populated for both shapes.
type Skill struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`

	// structured records whether the skill was decoded from (and should be
	// encoded as) the object form rather than a bare string.
	structured bool
}

// NewSkill returns a plain string-form skill.
func NewSkill(name string) Skill {
	return Skill{Name: name}
}

// NewStructuredSkill returns an object-form skill with an optional level.
func NewStructuredSkill(id, name, level string) Skill {
	return Skill{ID: id, Name: name, Level: level, structured: true}
}

// Structured reports whether the skill carries the object form.
func (s Skill) Structured() bool {
	return s.structured || s.ID != "" || s.Level != ""
}

// UnmarshalJSON decodes either a bare string or a structured skill record.
func (s *Skill) UnmarshalJSON(data []byte) error {
	// Fast path: bare string form.
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Skill{Name: name}
		return nil
	}

	var record struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Level string `json:"level"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("skill must be a string or an object: %w", err)
	}
	*s = Skill{ID: record.ID, Name: record.Name, Level: record.Level, structured: true}
	return nil
}

// MarshalJSON encodes the skill in the shape it was decoded from.
func (s Skill) MarshalJSON() ([]byte, error) {
	if !s.Structured() {
		return json.Marshal(s.Name)
	}
	record := struct {
		ID    string `json:"id,omitempty"`
		Name  string `json:"name"`
		Level string `json:"level,omitempty"`
	}{ID: s.ID, Name: s.Name, Level: s.Level}
	return json.Marshal(record)
}

// SkillNames extracts the display names from a skills array, handling both
// the string and structured forms uniformly.
func SkillNames(skills []Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}
