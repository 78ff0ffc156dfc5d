package constants

const (
	// DefaultTimezone resolves "today" in the system timezone
	DefaultTimezone = "Local"
)
