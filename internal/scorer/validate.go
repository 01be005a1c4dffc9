package scorer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/ai-navigator/internal/model"
)

// ValidationError reports every problem found in caller-supplied inputs.
// The engine never clamps or coerces; it rejects.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "scorer: invalid input: " + strings.Join(e.Problems, "; ")
}

// ValidateInput checks an option input against its declared driver table.
func ValidateInput(in model.OptionInput) error {
	var problems []string
	collect := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	spec, ok := Option(in.ID)
	if !ok {
		collect("unknown option %q", in.ID)
		return &ValidationError{Problems: problems}
	}

	for _, d := range spec.Drivers {
		v, present := in.Drivers[d.Key]
		if !present {
			collect("%s.%s is missing", in.ID, d.Key)
			continue
		}
		if !d.InRange(v) {
			collect("%s.%s = %d outside [%d,%d]", in.ID, d.Key, v, d.Min, d.Max)
		}
	}

	// Report unknown keys in a stable order.
	var unknown []string
	for k := range in.Drivers {
		if _, declared := spec.Driver(k); !declared {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		collect("%s.%s is not a known driver", in.ID, k)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// validatePair checks both inputs and that they name distinct options.
func validatePair(a, b model.OptionInput) error {
	var problems []string
	for _, in := range []model.OptionInput{a, b} {
		if err := ValidateInput(in); err != nil {
			problems = append(problems, err.(*ValidationError).Problems...)
		}
	}
	if a.ID == b.ID && a.ID != "" {
		problems = append(problems, fmt.Sprintf("both inputs are for option %q", a.ID))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
