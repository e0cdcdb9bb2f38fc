package questionbank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateSkills performs all structural checks on the given skills.
// Returns a combined error describing every problem found, or nil.
func validateSkills(skills []Skill) error {
	total := 0
	for _, s := range skills {
		total += len(s.Questions)
	}
	if len(skills) == 0 || total == 0 {
		return ErrEmptyBank
	}

	var errs []string
	keySet := make(map[string]bool, len(skills))
	idOwner := make(map[string]string, total)

	for _, s := range skills {
		if strings.TrimSpace(s.Key) == "" {
			errs = append(errs, "skill with empty key")
		}
		if keySet[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate skill key: %q", s.Key))
		}
		keySet[s.Key] = true

		for i, q := range s.Questions {
			ref := fmt.Sprintf("skill %q question %d", s.Key, i)
			if q.ID != "" {
				ref = fmt.Sprintf("question %q", q.ID)
				if owner, dup := idOwner[q.ID]; dup {
					errs = append(errs, fmt.Sprintf("duplicate question ID %q in skills %q and %q", q.ID, owner, s.Key))
				}
				idOwner[q.ID] = s.Key
			}

			if err := validate.Struct(q); err != nil {
				var fieldErrs validator.ValidationErrors
				if !errors.As(err, &fieldErrs) {
					errs = append(errs, fmt.Sprintf("%s: %v", ref, err))
					continue
				}
				for _, fe := range fieldErrs {
					errs = append(errs, fmt.Sprintf("%s: %s failed %q check", ref, fe.Namespace(), fe.Tag()))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidBank, strings.Join(errs, "\n  "))
	}
	return nil
}
