// Package validator provides composable field validation rules collected
// through Apply:
//
//	err := validator.Apply(
//		validator.Required("name", name),
//		validator.ValidEmail("email", email),
//		validator.MinLength("password", password, 8),
//	)
//
// A non-nil result is always a ValidationErrors value carrying per-field
// messages suitable for direct display.
package validator
