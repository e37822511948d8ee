package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jokester/src/app/http/dto"
	"jokester/src/app/http/response"
	"jokester/src/app/http/view"
	"jokester/src/app/middleware"
	"jokester/src/core/domain"
	"jokester/src/core/usecase"
)

// IdentityResolver finds the user behind a request.
type IdentityResolver interface {
	// UserID returns the identity, or false when the request has none.
	UserID(r *http.Request) (uuid.UUID, bool)

	// RequireUserID fails when the request has no identity. The error
	// decides how the failure is answered (typically a login redirect).
	RequireUserID(r *http.Request) (uuid.UUID, error)
}

// JokeHandler serves the joke pages.
type JokeHandler struct {
	jokeService *usecase.JokeService
	sessions    IdentityResolver
}

func NewJokeHandler(jokeService *usecase.JokeService, sessions IdentityResolver) *JokeHandler {
	return &JokeHandler{jokeService: jokeService, sessions: sessions}
}

// New shows the empty joke form to a logged-in user.
// GET /jokes/new
func (h *JokeHandler) New(c *gin.Context) {
	if _, ok := h.sessions.UserID(c.Request); !ok {
		response.Unauthorized(c, middleware.GetRequestID(c))
		return
	}
	response.Data(c, http.StatusOK, gin.H{}, view.PageNewJoke, view.NewJokeForm(nil))
}

// Create validates the submitted joke and stores it.
// POST /jokes/new
func (h *JokeHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	userID, err := h.sessions.RequireUserID(c.Request)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	sub := domain.Submission{
		Name:    postForm(c, "name"),
		Content: postForm(c, "content"),
	}

	out, err := h.jokeService.Create(c.Request.Context(), userID, sub)
	if err != nil {
		_ = c.Error(err)
		if domain.IsUnauthorized(err) {
			response.FromDomainError(c, err, requestID)
			return
		}
		// Storage failures are not told apart for the user.
		response.InternalError(c, requestID)
		return
	}

	switch o := out.(type) {
	case usecase.Rejected:
		response.Data(c, http.StatusBadRequest, o.Data, view.PageNewJoke, view.NewJokeForm(o.Data))
	case usecase.Created:
		response.Redirect(c, "/jokes/"+o.Joke.ID.String())
	}
}

// Show displays one joke.
// GET /jokes/:joke_id
func (h *JokeHandler) Show(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("joke_id"))
	if err != nil {
		response.NotFound(c, "joke not found", requestID)
		return
	}

	joke, err := h.jokeService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}
	response.Data(c, http.StatusOK, dto.NewJokeResponse(joke), view.PageJoke, view.NewJokePageFor(joke))
}

// postForm reads one url-encoded or multipart text value. File parts are
// not text values and read as absent.
func postForm(c *gin.Context, key string) domain.FormValue {
	v, ok := c.GetPostForm(key)
	return domain.FormValue{Value: v, Present: ok}
}
