package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "CONTACT_ADDRESS_NOT_FOUND"
	Details string `json:"details"` // Detailed error information, empty in production for internal errors
}

// Response is the envelope written for every failed request.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`

	// Migration hints: set when the store reported a missing table or column.
	NeedsTableCreation bool `json:"needsTableCreation"`
	NeedsSchemaUpdate  bool `json:"needsSchemaUpdate"`
}
