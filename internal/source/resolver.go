package source

import (
	"context"
	"fmt"
	"net/http"
)

// ContentSource supplies the base template and flavor blocks that make up a
// managed section.
type ContentSource interface {
	// FetchTemplate returns the base template text.
	FetchTemplate(ctx context.Context) (string, error)

	// FetchFlavor returns the supplementary text for a flavor.
	FetchFlavor(ctx context.Context, flavor Flavor) (string, error)
}

// SourceError represents an error associated with fetching a single resource.
type SourceError struct {
	Source    string
	Operation string
	Err       error
	Hint      string
}

func (e *SourceError) Error() string {
	msg := fmt.Sprintf("%s: %s failed: %s", e.Source, e.Operation, e.Err)
	if e.Hint != "" {
		msg += " — " + e.Hint
	}
	return msg
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// HTTPClient abstracts HTTP operations for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultHTTPClient returns an HTTPClient using http.DefaultClient.
type DefaultHTTPClient struct{}

func (DefaultHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return http.DefaultClient.Do(req)
}

// templateSource names the base template in errors.
const templateSource = "template"

func flavorName(f Flavor) string {
	return fmt.Sprintf("flavor '%s'", f)
}
