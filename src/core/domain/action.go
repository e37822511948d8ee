package domain

// ActionData is what the new-joke form is rendered from after a rejected
// submission. It is one of FormError or FieldErrors; a nil ActionData means
// a first visit with nothing to show.
type ActionData interface {
	actionData()
}

// FormError reports a submission that did not have the expected shape.
type FormError struct {
	Message string `json:"formError"`
}

// FieldErrors reports structurally valid input that broke a field rule.
// Fields echoes the submitted values so the form can be re-filled.
type FieldErrors struct {
	Errors JokeFieldErrors `json:"fieldErrors"`
	Fields JokeFields      `json:"fields"`
}

func (FormError) actionData()   {}
func (FieldErrors) actionData() {}
