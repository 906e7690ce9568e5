package forms

import (
	"errors"
	"sort"
)

// ErrUnknownForm is returned for identifiers with no configured policy.
var ErrUnknownForm = errors.New("unknown form")

// Policy is the per-form processing configuration: how to address the
// respondent and which prompt template drives content generation.
type Policy struct {
	Name           string
	PromptTemplate string
	EmailSubject   string
	FromEmail      string
	Description    string
}

// Registry is a read-only form-id to policy table, shared across requests.
type Registry struct {
	policies map[string]Policy
}

// NewRegistry builds a registry over the given table.
func NewRegistry(policies map[string]Policy) *Registry {
	table := make(map[string]Policy, len(policies))
	for id, policy := range policies {
		table[id] = policy
	}
	return &Registry{policies: table}
}

// Default returns the registry of production forms.
func Default() *Registry {
	return NewRegistry(map[string]Policy{
		"KdYBmq7K": {
			Name:           "Growth Strategy Assessment",
			PromptTemplate: "KdYBmq7K.txt",
			EmailSubject:   "Your Growth Strategy Assessment Results",
			FromEmail:      "Reda Bennani <redabennani@epinnovators.org>",
			Description:    "Epiminded Growth Strategist questionnaire with scoring system",
		},
		"EquFr0aR": {
			Name:           "Form EquFr0aR",
			PromptTemplate: "EquFr0aR.txt",
			EmailSubject:   "Thank you for your submission !",
			FromEmail:      "Reda Bennani <redabennani@epinnovators.org>",
			Description:    "Custom form EquFr0aR responses",
		},
		"Tikf2fbS": {
			Name:           "Form Tikf2fbS",
			PromptTemplate: "Tikf2fbS.txt",
			EmailSubject:   "Your Form Response",
			FromEmail:      "Reda Bennani <redabennani@epinnovators.org>",
			Description:    "Custom form Tikf2fbS responses",
		},
	})
}

// Lookup returns the policy for a form identifier. Matching is exact and
// case sensitive; there is no default policy.
func (r *Registry) Lookup(formID string) (Policy, error) {
	policy, ok := r.policies[formID]
	if !ok {
		return Policy{}, ErrUnknownForm
	}
	return policy, nil
}

// SupportedIDs enumerates all configured form identifiers, sorted.
func (r *Registry) SupportedIDs() []string {
	ids := make([]string, 0, len(r.policies))
	for id := range r.policies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
