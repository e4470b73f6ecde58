package constants

// Error codes reported by external providers (language model, mail, blob
// storage).
const (
	ErrCodeInvalidAPIKey     = "INVALID_API_KEY"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
	ErrCodeEmptyCompletion   = "EMPTY_COMPLETION"
	ErrCodeNotConfigured     = "PROVIDER_NOT_CONFIGURED"
	ErrCodeUpstreamError     = "UPSTREAM_ERROR"
)

var ProviderErrorMessages = map[string]string{
	ErrCodeInvalidAPIKey:     "The provider rejected the API key",
	ErrCodeRateLimited:       "Rate limit exceeded. Please try again later",
	ErrCodeNetworkError:      "Unable to reach the provider",
	ErrCodeInvalidDataFormat: "The provider returned data in an unexpected format",
	ErrCodeEmptyCompletion:   "The provider returned no text",
	ErrCodeNotConfigured:     "The provider is not configured",
	ErrCodeUpstreamError:     "The provider failed to handle the request",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := ProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
