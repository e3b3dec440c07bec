package types

// VerificationData is the evidence a dealer attaches when completing a task.
type VerificationData struct {
	ScreenshotURLs []string `json:"screenshot_urls,omitempty"`
	Links          []string `json:"links,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}
