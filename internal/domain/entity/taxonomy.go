package entity

import (
	"errors"
	"fmt"
	"strings"
)

// TaxonomyMode selects how text is mapped onto haptic classes
type TaxonomyMode string

const (
	// TaxonomyModeHierarchical classifies a category first, then a subclass within it
	TaxonomyModeHierarchical TaxonomyMode = "hierarchical"
	// TaxonomyModeFlat classifies directly against every leaf class
	TaxonomyModeFlat TaxonomyMode = "flat"
)

// ErrInvalidTaxonomy is returned when a taxonomy fails validation
var ErrInvalidTaxonomy = errors.New("invalid taxonomy")

// Class is a leaf haptic class with its descriptive tags
type Class struct {
	Name string   `json:"name" yaml:"name"`
	Tags []string `json:"tags" yaml:"tags"`
}

// Label builds the candidate label sent to the zero-shot classifier
func (c Class) Label() string {
	return CandidateLabel(c.Name, c.Tags)
}

// Category is a top-level class grouping subclasses
type Category struct {
	Name       string   `json:"name" yaml:"name"`
	Tags       []string `json:"tags" yaml:"tags"`
	Subclasses []Class  `json:"subclasses" yaml:"subclasses"`
}

// Label builds the category-level candidate label
func (c Category) Label() string {
	return CandidateLabel(c.Name, c.Tags)
}

// Taxonomy is the immutable class table loaded at startup.
// Categories is used in hierarchical mode, Classes in flat mode.
type Taxonomy struct {
	Mode       TaxonomyMode `json:"mode" yaml:"mode"`
	Categories []Category   `json:"categories,omitempty" yaml:"categories"`
	Classes    []Class      `json:"classes,omitempty" yaml:"classes"`
}

// CandidateLabel joins a name and its tags as "<name>: <tag1> <tag2> ..."
func CandidateLabel(name string, tags []string) string {
	return name + ": " + strings.Join(tags, " ")
}

// LabelName returns the name portion of a candidate label, before the first ':'
func LabelName(label string) string {
	name, _, _ := strings.Cut(label, ":")
	return name
}

// IsHierarchical reports whether the taxonomy cascades category -> subclass
func (t *Taxonomy) IsHierarchical() bool {
	return t.Mode == TaxonomyModeHierarchical
}

// CategoryLabels returns the category-level candidate labels in declaration order
func (t *Taxonomy) CategoryLabels() []string {
	labels := make([]string, len(t.Categories))
	for i, c := range t.Categories {
		labels[i] = c.Label()
	}
	return labels
}

// SubclassLabels returns the candidate labels for the subclasses of the named category.
// The second return value is false if no such category exists.
func (t *Taxonomy) SubclassLabels(category string) ([]string, bool) {
	for _, c := range t.Categories {
		if c.Name != category {
			continue
		}
		labels := make([]string, len(c.Subclasses))
		for i, s := range c.Subclasses {
			labels[i] = s.Label()
		}
		return labels, true
	}
	return nil, false
}

// ClassLabels returns the leaf candidate labels of a flat taxonomy
func (t *Taxonomy) ClassLabels() []string {
	labels := make([]string, len(t.Classes))
	for i, c := range t.Classes {
		labels[i] = c.Label()
	}
	return labels
}

// Validate checks the taxonomy for shape and cross-consistency
func (t *Taxonomy) Validate() error {
	switch t.Mode {
	case TaxonomyModeHierarchical:
		if len(t.Categories) == 0 {
			return fmt.Errorf("%w: hierarchical taxonomy has no categories", ErrInvalidTaxonomy)
		}
		if len(t.Classes) > 0 {
			return fmt.Errorf("%w: hierarchical taxonomy must not declare flat classes", ErrInvalidTaxonomy)
		}
		names := make([]string, len(t.Categories))
		for i, c := range t.Categories {
			names[i] = c.Name
			if len(c.Subclasses) == 0 {
				return fmt.Errorf("%w: category %q has no subclasses", ErrInvalidTaxonomy, c.Name)
			}
			if err := validateClasses("category "+c.Name, c.Subclasses); err != nil {
				return err
			}
		}
		return validateNames("categories", names)
	case TaxonomyModeFlat:
		if len(t.Classes) == 0 {
			return fmt.Errorf("%w: flat taxonomy has no classes", ErrInvalidTaxonomy)
		}
		if len(t.Categories) > 0 {
			return fmt.Errorf("%w: flat taxonomy must not declare categories", ErrInvalidTaxonomy)
		}
		return validateClasses("classes", t.Classes)
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidTaxonomy, t.Mode)
	}
}

func validateClasses(scope string, classes []Class) error {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	return validateNames(scope, names)
}

func validateNames(scope string, names []string) error {
	seen := make(map[string]string, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty name in %s", ErrInvalidTaxonomy, scope)
		}
		if strings.Contains(name, ":") {
			return fmt.Errorf("%w: name %q in %s contains ':'", ErrInvalidTaxonomy, name, scope)
		}
		key := strings.ToLower(name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q collides with %q in %s", ErrInvalidTaxonomy, name, prev, scope)
		}
		seen[key] = name
	}
	return nil
}
