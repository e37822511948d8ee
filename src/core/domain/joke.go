package domain

import "unicode/utf16"

// Joke form rules.
const (
	MinJokeNameLength    = 3
	MinJokeContentLength = 10

	MsgFormNotSubmitted = "Form not submitted correctly."
	MsgNameTooShort     = "That joke's name is too short"
	MsgContentTooShort  = "That joke is too short"
)

// FormValue is a single submitted form value that may be absent.
type FormValue struct {
	Value   string
	Present bool
}

// Field returns a present form value.
func Field(v string) FormValue {
	return FormValue{Value: v, Present: true}
}

// Submission holds the raw values posted to the new-joke form.
type Submission struct {
	Name    FormValue
	Content FormValue
}

// JokeFields are the structurally valid values of a submission.
type JokeFields struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Fields returns the submitted values, or false when either is missing.
func (s Submission) Fields() (JokeFields, bool) {
	if !s.Name.Present || !s.Content.Present {
		return JokeFields{}, false
	}
	return JokeFields{Name: s.Name.Value, Content: s.Content.Value}, true
}

// JokeFieldErrors holds per-field messages. An empty string means the field is valid.
type JokeFieldErrors struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
}

// Any reports whether at least one field failed validation.
func (e JokeFieldErrors) Any() bool {
	return e.Name != "" || e.Content != ""
}

// TextLength counts UTF-16 code units, so a character outside the Basic
// Multilingual Plane (most emoji) counts as two.
func TextLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// ValidateJoke runs every field rule; it never stops at the first failure.
func ValidateJoke(f JokeFields) JokeFieldErrors {
	return JokeFieldErrors{
		Name:    validateJokeName(f.Name),
		Content: validateJokeContent(f.Content),
	}
}

func validateJokeName(name string) string {
	if TextLength(name) < MinJokeNameLength {
		return MsgNameTooShort
	}
	return ""
}

func validateJokeContent(content string) string {
	if TextLength(content) < MinJokeContentLength {
		return MsgContentTooShort
	}
	return ""
}
