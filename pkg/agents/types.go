package agents

// JobSummary is the structured digest of a job description.
// Immutable once returned by the Summarizer.
type JobSummary struct {
	CompanyName     string   `json:"company_name"`
	Summary         string   `json:"summary"`
	KeyRequirements []string `json:"key_requirements"`
	CompanyContext  string   `json:"company_context"`
}

// WritingSample is a user-provided sample used for style conditioning.
type WritingSample struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

// EmailDraft is the drafted introduction email.
// Immutable once returned by the Drafter.
type EmailDraft struct {
	Subject         string  `json:"subject"`
	EmailBody       string  `json:"email_body"`
	ConfidenceScore float64 `json:"confidence_score"`
}
