package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deppfellow/employee-api/internal/domain"
)

// employeeFields lists the accepted keys in the order they are checked.
var employeeFields = []string{domain.FieldName, domain.FieldPosition}

// ValidateEmployee checks an employee payload and returns every violation found.
//
// In create mode both fields are mandatory; in update mode only the fields
// present are checked. An empty result means the payload is valid.
func ValidateEmployee(data map[string]any, isUpdate bool) []string {
	var violations []string

	if unknown := unknownFields(data); len(unknown) > 0 {
		violations = append(violations, "Unknown fields: "+strings.Join(unknown, ", "))
	}

	if !isUpdate {
		for _, field := range employeeFields {
			if _, ok := data[field]; !ok {
				violations = append(violations, fmt.Sprintf("Field '%s' is required", field))
			}
		}
	}

	for _, field := range employeeFields {
		value, ok := data[field]
		if !ok {
			continue
		}
		if msg := checkTextField(field, value); msg != "" {
			violations = append(violations, msg)
		}
	}

	return violations
}

// checkTextField applies the string rules to one present field and returns
// the first failing rule's message, or "" when the value is acceptable.
func checkTextField(field string, value any) string {
	s, ok := value.(string)
	if !ok {
		return fmt.Sprintf("Field '%s' must be a string", field)
	}

	if err := validate.Var(strings.TrimSpace(s), "required"); err != nil {
		return fmt.Sprintf("Field '%s' cannot be empty", field)
	}

	// Length is measured on the raw value, before trimming.
	if err := validate.Var(s, fmt.Sprintf("max=%d", domain.MaxFieldLength)); err != nil {
		return fmt.Sprintf("Field '%s' must be %d characters or less", field, domain.MaxFieldLength)
	}

	return ""
}

func unknownFields(data map[string]any) []string {
	var unknown []string
	for key := range data {
		if key != domain.FieldName && key != domain.FieldPosition {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// EmployeePatchFrom builds a trimmed patch from a payload that already passed
// ValidateEmployee.
func EmployeePatchFrom(data map[string]any) domain.EmployeePatch {
	var patch domain.EmployeePatch

	if s, ok := data[domain.FieldName].(string); ok {
		name := strings.TrimSpace(s)
		patch.Name = &name
	}
	if s, ok := data[domain.FieldPosition].(string); ok {
		position := strings.TrimSpace(s)
		patch.Position = &position
	}

	return patch
}
