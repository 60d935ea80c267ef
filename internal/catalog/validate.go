package catalog

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the invariants of the backing sequences and reports every
// violation it finds, not just the first one.
func Validate(features []FeatureEntry, tech []TechCategory, security []SecurityMeasure) error {
	var result *multierror.Error

	for i, f := range features {
		if strings.TrimSpace(f.Title) == "" {
			result = multierror.Append(result, fmt.Errorf("feature %d: empty title", i+1))
		}
	}

	seen := make(map[string]int, len(tech))
	for i, tc := range tech {
		name := strings.TrimSpace(tc.Category)
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("tech category %d: empty name", i+1))
			continue
		}
		if first, dup := seen[name]; dup {
			result = multierror.Append(result, fmt.Errorf("tech category %d: %q already declared at %d", i+1, name, first))
		} else {
			seen[name] = i + 1
		}
		if len(tc.Items) == 0 {
			result = multierror.Append(result, fmt.Errorf("tech category %q: no items", name))
		}
	}

	for i, m := range security {
		if strings.TrimSpace(string(m)) == "" {
			result = multierror.Append(result, fmt.Errorf("security measure %d: empty text", i+1))
		}
	}

	return result.ErrorOrNil()
}

// ValidateCurrent validates the built-in data.
func ValidateCurrent() error {
	return Validate(Features(), TechStack(), SecurityMeasures())
}
