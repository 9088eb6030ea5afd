package core

import (
	"fmt"
	"strings"
)

// Validation messages surfaced verbatim to the caller.
const (
	MsgMinimumSpend    = "Minimum $1000/month required for analysis"
	MsgMinimumDuration = "Minimum 6 months investment required for analysis"
)

// ValidationError reports inputs below the minimum spend or duration.
// Recoverable: the caller can resubmit once the engagement qualifies.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("input validation failed: %s", strings.Join(e.Errors, "; "))
}

// MalformedInputError reports required numeric fields or sections that are
// absent. Unlike validation failures, this indicates the collaborator handed
// over an incomplete record.
type MalformedInputError struct {
	Fields []string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", strings.Join(e.Fields, "; "))
}

// ValidateScoreInputs gate-keeps the pipeline. Both checks run independently
// so both messages can be present at once. Returns *ValidationError when the
// engagement does not meet the configured minimums.
func (p *Policy) ValidateScoreInputs(monthlySpend float64, investmentMonths int) error {
	var errs []string
	if monthlySpend < p.cfg.MinMonthlySpend {
		errs = append(errs, MsgMinimumSpend)
	}
	if investmentMonths < p.cfg.MinInvestmentMonths {
		errs = append(errs, MsgMinimumDuration)
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
