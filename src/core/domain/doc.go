// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: Joke and User, the two durable records
//   - Submission: the raw form values posted when creating a joke
//   - ActionData: the closed set of outcomes rendered back to the joke form
//   - Domain Errors: business rule violations mapped to HTTP by the app layer
//
// Rules for this package:
//   - No external dependencies except the standard library and uuid
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Validation rules live next to the entity they guard
//
// Example:
//
//	sub := domain.Submission{Name: domain.Field("Chicken Joke"), Content: domain.Field("...")}
//	fields, ok := sub.Fields()
//	if !ok {
//	    return domain.FormError{Message: domain.MsgFormNotSubmitted}
//	}
//	if errs := domain.ValidateJoke(fields); errs.Any() {
//	    return domain.FieldErrors{Errors: errs, Fields: fields}
//	}
package domain
