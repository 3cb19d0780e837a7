package source

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAll fetches the base template and every flavor, then joins them into
// the text of a managed section. Flavors are fetched concurrently but joined
// in the order given. Any failure aborts the whole fetch.
func FetchAll(ctx context.Context, src ContentSource, flavors []Flavor) (string, error) {
	base, err := src.FetchTemplate(ctx)
	if err != nil {
		return "", err
	}

	texts := make([]string, len(flavors))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range flavors {
		g.Go(func() error {
			text, err := src.FetchFlavor(gctx, f)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return Compose(base, texts), nil
}

// Compose joins the base template and flavor texts, separating each flavor
// from what precedes it with a blank line.
func Compose(base string, flavorTexts []string) string {
	content := base
	for _, text := range flavorTexts {
		content += "\n\n" + text
	}
	return content
}
