// Package dto contains the request and response shapes of the HTTP layer.
//
// Form requests bind with gin's form binding and validator tags. The joke
// form is parsed by hand instead, because an empty value there is a field
// error and only a missing value is a form error.
package dto
