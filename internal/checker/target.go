package checker

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InvalidURLError reports input that failed URL syntax validation after
// scheme normalization. It carries the string that was attempted.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL format: %s", e.URL)
}

var urlValidator = validator.New()

// Normalize ensures raw carries an explicit http or https scheme and
// passes URL syntax validation. Inputs without a scheme default to
// https. No side effects; invalid input returns *InvalidURLError.
func Normalize(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	if err := urlValidator.Var(u, "url"); err != nil {
		return "", &InvalidURLError{URL: u}
	}
	return u, nil
}
