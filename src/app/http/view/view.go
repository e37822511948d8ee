// Package view renders the HTML pages of the joke app.
//
// Page structs are built by pure functions from domain values; templates
// only read them. Templates are embedded and registered on the gin engine
// with Load.
package view

import (
	"embed"
	"html/template"

	"jokester/src/core/domain"
)

//go:embed templates/*.html
var templates embed.FS

// Template names.
const (
	PageNewJoke      = "jokes/new"
	PageJoke         = "jokes/show"
	PageLogin        = "login"
	PageUnauthorized = "unauthorized"
	PageNotFound     = "not_found"
	PageError        = "error"
)

// Load parses the embedded templates.
func Load() (*template.Template, error) {
	return template.New("").ParseFS(templates, "templates/*.html")
}

// NewJokePage is the view model for the new-joke form.
type NewJokePage struct {
	Name         string
	Content      string
	NameError    string
	ContentError string
	FormError    string
}

// NewJokeForm builds the form from the last ActionData. nil renders an empty form.
func NewJokeForm(data domain.ActionData) NewJokePage {
	switch d := data.(type) {
	case domain.FormError:
		return NewJokePage{FormError: d.Message}
	case domain.FieldErrors:
		return NewJokePage{
			Name:         d.Fields.Name,
			Content:      d.Fields.Content,
			NameError:    d.Errors.Name,
			ContentError: d.Errors.Content,
		}
	default:
		return NewJokePage{}
	}
}

// JokePage is the view model for a single joke.
type JokePage struct {
	ID      string
	Name    string
	Content string
}

func NewJokePageFor(j *domain.Joke) JokePage {
	return JokePage{ID: j.ID.String(), Name: j.Name, Content: j.Content}
}

// LoginPage is the view model for the login/register form.
type LoginPage struct {
	LoginType     string
	Username      string
	RedirectTo    string
	UsernameError string
	PasswordError string
	FormError     string
}

// MessagePage backs the fallback pages.
type MessagePage struct {
	Message string
}

// Fallback messages.
const (
	MsgMustLogIn  = "You must be logged in to create a joke."
	MsgUnexpected = "Something unexpected went wrong. Sorry about that."
	MsgNotFound   = "Huh? What the heck is that?"
)
