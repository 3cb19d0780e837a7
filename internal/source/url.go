package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FlavorPlaceholder is replaced by the flavor name in URLSource.FlavorURL.
const FlavorPlaceholder = "{flavor}"

// URLSource fetches template and flavor text over HTTP(S).
type URLSource struct {
	TemplateURL string
	FlavorURL   string // must contain FlavorPlaceholder
	Client      HTTPClient
	MaxSize     int64 // max response size in bytes (0 = no limit)
}

func (u *URLSource) FetchTemplate(ctx context.Context) (string, error) {
	if u.TemplateURL == "" {
		return "", &SourceError{Source: templateSource, Operation: "fetch", Err: fmt.Errorf("template url is required")}
	}
	content, err := u.fetchURL(ctx, u.TemplateURL, templateSource)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (u *URLSource) FetchFlavor(ctx context.Context, flavor Flavor) (string, error) {
	name := flavorName(flavor)
	if !strings.Contains(u.FlavorURL, FlavorPlaceholder) {
		return "", &SourceError{
			Source:    name,
			Operation: "fetch",
			Err:       fmt.Errorf("flavor url %q has no %s placeholder", u.FlavorURL, FlavorPlaceholder),
		}
	}
	url := strings.ReplaceAll(u.FlavorURL, FlavorPlaceholder, string(flavor))
	content, err := u.fetchURL(ctx, url, name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (u *URLSource) fetchURL(ctx context.Context, url, sourceName string) ([]byte, error) {
	client := u.Client
	if client == nil {
		client = DefaultHTTPClient{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SourceError{Source: sourceName, Operation: "fetch", Err: fmt.Errorf("creating request: %w", err)}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &SourceError{Source: sourceName, Operation: "fetch", Err: fmt.Errorf("fetching %s: %w", url, err), Hint: "check network connectivity and URL"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{
			Source:    sourceName,
			Operation: "fetch",
			Err:       fmt.Errorf("HTTP %d from %s", resp.StatusCode, url),
			Hint:      "check that the URL is accessible and returns the expected content",
		}
	}

	var reader io.Reader = resp.Body
	if u.MaxSize > 0 {
		reader = io.LimitReader(resp.Body, u.MaxSize+1)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, &SourceError{Source: sourceName, Operation: "fetch", Err: fmt.Errorf("reading response: %w", err)}
	}

	if u.MaxSize > 0 && int64(len(content)) > u.MaxSize {
		return nil, &SourceError{
			Source:    sourceName,
			Operation: "fetch",
			Err:       fmt.Errorf("response exceeds max size %d bytes", u.MaxSize),
		}
	}

	return content, nil
}
