package dto

import (
	"time"

	"jokester/src/core/domain"
)

// Login types accepted by the login form.
const (
	LoginTypeLogin    = "login"
	LoginTypeRegister = "register"
)

// LoginRequest is the login/register form.
type LoginRequest struct {
	LoginType  string `form:"loginType" binding:"required,oneof=login register"`
	Username   string `form:"username" binding:"required"`
	Password   string `form:"password" binding:"required"`
	RedirectTo string `form:"redirectTo"`
}

// JokeResponse is the JSON shape of a joke.
type JokeResponse struct {
	ID         string    `json:"id"`
	JokesterID string    `json:"jokesterId"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewJokeResponse(j *domain.Joke) JokeResponse {
	return JokeResponse{
		ID:         j.ID.String(),
		JokesterID: j.JokesterID.String(),
		Name:       j.Name,
		Content:    j.Content,
		CreatedAt:  j.CreatedAt,
	}
}
