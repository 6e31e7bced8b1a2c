package domain

// ProviderConfig is one company's known connection info: where its postings
// live and which ATS family serves them.
type ProviderConfig struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	APIURL string `yaml:"api_url"`
}

// Outcome classifies a company's fetch attempt for a run. Exactly one per
// company; write-once.
type Outcome string

const (
	OutcomeSuccess        Outcome = "success"
	OutcomeNoMatchingJobs Outcome = "no_matching_jobs"
	OutcomeAPIError       Outcome = "api_error"
	OutcomeNoAPIFound     Outcome = "no_api_found"
)
