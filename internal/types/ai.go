package types

// MatchScoreResult is the analysis returned by the AI match-score service.
// ATSScore is a 0-100 integer; MatchScore is a 0-1 fraction.
type MatchScoreResult struct {
	ATSScore           int      `json:"ats_score"`
	MatchScore         float64  `json:"match_score"`
	Strengths          []string `json:"strengths"`
	Gaps               []string `json:"gaps"`
	KeywordsToAdd      []string `json:"keywords_to_add"`
	RecommendedBullets []string `json:"recommended_bullets"`
	Confidence         float64  `json:"confidence,omitempty"`
}

// ResumeChanges summarizes the edits the tailoring service made.
type ResumeChanges struct {
	WordsAdded          int      `json:"words_added"`
	WordsRemoved        int      `json:"words_removed"`
	LengthChangePercent float64  `json:"length_change_percent"`
	TopKeywordsAdded    []string `json:"top_keywords_added"`
}

// TailoredResume is the result of the resume tailoring service.
type TailoredResume struct {
	TailoredResume    string         `json:"tailored_resume"`
	ChangesMade       *ResumeChanges `json:"changes_made,omitempty"`
	OptimizationScore float64        `json:"optimization_score,omitempty"`
}

// MatchScoreRequest is the body of a match-score call.
type MatchScoreRequest struct {
	UserProfile    any    `json:"userProfile"`
	JobDescription string `json:"jobDescription" validate:"required"`
	ResumeText     string `json:"resumeText,omitempty"`
}

// TailorResumeRequest is the body of a resume tailoring call.
type TailorResumeRequest struct {
	OriginalCV     string `json:"originalCV" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
	UserProfile    any    `json:"userProfile"`
	Style          string `json:"style"`
	Tone           string `json:"tone"`
	Length         string `json:"length"`
}

// CoverLetterRequest is the body of a cover-letter generation call.
type CoverLetterRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
	UserProfile    any    `json:"userProfile"`
	CompanyName    string `json:"companyName,omitempty"`
}

// EmailRequest is the body of an outreach email generation call.
type EmailRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
	UserProfile    any    `json:"userProfile"`
	RecipientType  string `json:"recipientType"`
}

// ChatRequest is the body of an assistant chat call.
type ChatRequest struct {
	Message string        `json:"message" validate:"required"`
	Context any           `json:"context,omitempty"`
	History []ChatMessage `json:"chatHistory,omitempty"`
}
