package model

// Registration is the JSON body posted to the save endpoint: every named
// form field plus the generated "codigo".
type Registration map[string]string

// RegistrationResult is the save endpoint's answer.
type RegistrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
