package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/edgarhound/edgarhound/edgar"
)

// FilingFilter represents a compiled filing filter expression.
type FilingFilter struct {
	program *vm.Program
	expr    string
}

// staticEnv holds the helper functions available to every expression.
func staticEnv() map[string]interface{} {
	return map[string]interface{}{
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// Current time
		"now": time.Now,
	}
}

// Compile compiles a filing filter expression.
func Compile(expression string) (*FilingFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty filter expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(staticEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
			Err:        err,
		}
	}

	return &FilingFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate evaluates the filter against a filing.
func (f *FilingFilter) Evaluate(filing edgar.Filing) (bool, error) {
	env := staticEnv()

	// Filing data
	env["Filing"] = filing

	// Filing helpers
	env["formIs"] = func(formType string) bool {
		return strings.EqualFold(filing.FormType, formType)
	}
	env["isAmendment"] = filing.IsAmendment
	env["hasItem"] = func(item string) bool {
		for _, it := range filing.Items {
			if strings.EqualFold(it, item) {
				return true
			}
		}
		return false
	}
	env["filedWithinDays"] = func(days int) bool {
		return filing.FiledAt.After(time.Now().AddDate(0, 0, -days))
	}

	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expr,
			Accession:  filing.AccessionNumber,
			Reason:     err.Error(),
			Err:        err,
		}
	}

	result, ok := output.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expr,
			Accession:  filing.AccessionNumber,
			Reason:     "expression did not evaluate to a boolean",
		}
	}

	return result, nil
}

// String returns the source expression.
func (f *FilingFilter) String() string {
	return f.expr
}
