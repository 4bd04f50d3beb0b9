// Package validation contains the logic for validating
// request data.
//
// It decodes raw JSON bodies into generic objects and checks them
// field by field, reporting every violation as a human-readable
// message the client can act on.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared by all rules in this package; it is safe for
// concurrent use once built.
var validate = validator.New()
