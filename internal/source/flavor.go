package source

import (
	"fmt"
	"strings"
)

// Flavor names a supplementary content block appended after the base
// template.
type Flavor string

const (
	NextJS Flavor = "nextjs"
	React  Flavor = "react"
	Python Flavor = "python"
	Go     Flavor = "go"
)

// flavorLabels holds the human-readable name of each flavor, in
// presentation order.
var flavorLabels = []struct {
	flavor Flavor
	label  string
}{
	{NextJS, "Next.js"},
	{React, "React"},
	{Python, "Python"},
	{Go, "Go"},
}

// Flavors returns every known flavor in presentation order.
func Flavors() []Flavor {
	out := make([]Flavor, len(flavorLabels))
	for i, fl := range flavorLabels {
		out[i] = fl.flavor
	}
	return out
}

// Label returns the display name of f, or f itself if unknown.
func (f Flavor) Label() string {
	for _, fl := range flavorLabels {
		if fl.flavor == f {
			return fl.label
		}
	}
	return string(f)
}

// ParseFlavor converts a user-supplied name into a Flavor.
func ParseFlavor(name string) (Flavor, error) {
	f := Flavor(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Flavors() {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, len(flavorLabels))
	for i, fl := range flavorLabels {
		names[i] = string(fl.flavor)
	}
	return "", fmt.Errorf("unknown flavor '%s' — supported flavors: %s", name, strings.Join(names, ", "))
}
