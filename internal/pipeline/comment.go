package pipeline

import (
	"fmt"
	"strings"

	"veridoc/internal/match"
	"veridoc/internal/validate"
)

// buildComment writes the human-readable summary for a record. Each of the
// four validation predicates contributes either an issue or a success line;
// the whole thing is suffixed with the confidence percentage.
func buildComment(o validate.Outcome, res match.Result) string {
	var issues, successes []string

	if o.HasRequiredFields {
		successes = append(successes, "all required fields were found")
	} else {
		issues = append(issues, "missing required document information")
	}

	if o.IsValidName {
		successes = append(successes, "name format is valid")
	} else {
		issues = append(issues, "extracted name is missing or not a valid personal name")
	}

	if o.IsNotExpired {
		successes = append(successes, "document is not expired")
	} else {
		issues = append(issues, "document has expired or no valid expiry date found")
	}

	if o.IdentityFound {
		p := res.Matched
		successes = append(successes, fmt.Sprintf("identity matched: %s (%s)", p.FullName, p.Department))
	} else {
		msg := "name not found in identity roster"
		if len(res.Suggestions) > 0 {
			msg += fmt.Sprintf("; did you mean: %s", strings.Join(res.Suggestions, ", "))
		}
		issues = append(issues, msg)
	}

	confidence := fmt.Sprintf("Confidence: %.0f%%.", o.Confidence*100)
	if len(issues) == 0 {
		return fmt.Sprintf("All validations passed: %s. Document verified and approved. %s",
			strings.Join(successes, ", "), confidence)
	}
	return fmt.Sprintf("Verification failed: %s. %s", strings.Join(issues, ", "), confidence)
}
