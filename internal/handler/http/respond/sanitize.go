package respond

import (
	"regexp"
)

var (
	// HuggingFace API tokens ("hf_..."), used by the image generator.
	hfTokenPattern = regexp.MustCompile(`hf_[a-zA-Z0-9]{10,}`)

	// Generic bearer tokens leaking through wrapped transport errors.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._\-]+`)

	// Credentials embedded in URLs.
	urlPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
)

// SanitizeError returns the error message with secrets masked so it can
// be written to logs safely.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = hfTokenPattern.ReplaceAllString(msg, "hf_****")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
