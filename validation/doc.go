// Package validation checks caller-supplied parameters before a request is
// built. Failures are ParameterError values listing every offending field.
//
// # Struct Tag Validation
//
//	type RegisterRequest struct {
//	    Email    string `json:"email" validate:"required"`
//	    Gender   string `json:"gender" validate:"oneof=m f bot"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Required("email", email).
//	    Min("page", page, 1).
//	    Err()
package validation
