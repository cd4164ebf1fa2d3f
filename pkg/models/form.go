package models

// Represents the data structure coming from the landing page signup form
type SignupFormData struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Honeypot string `json:"honeypot" form:"honeypot"`
}

// Signup is a single accepted signup as kept in the local cache.
// Email is always trimmed and lowercased; it is the identity key.
type Signup struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubmissionPayload is the body posted to the remote ingestion endpoint
type SubmissionPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Honeypot string `json:"honeypot"`
	Source   string `json:"source"`
	TS       string `json:"ts"`
}
