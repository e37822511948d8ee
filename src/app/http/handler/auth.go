package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jokester/src/app/http/dto"
	"jokester/src/app/http/response"
	"jokester/src/app/http/view"
	"jokester/src/app/middleware"
	"jokester/src/core/domain"
	"jokester/src/core/usecase"
)

const defaultRedirect = "/jokes/new"

// SessionWriter starts and ends sessions.
type SessionWriter interface {
	Create(w http.ResponseWriter, userID uuid.UUID) error
	Destroy(w http.ResponseWriter)
}

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	authService *usecase.AuthService
	sessions    SessionWriter
}

func NewAuthHandler(authService *usecase.AuthService, sessions SessionWriter) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// LoginPage renders the login form.
// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, view.PageLogin, view.LoginPage{
		LoginType:  dto.LoginTypeLogin,
		RedirectTo: safeRedirect(c.Query("redirectTo")),
	})
}

// Login logs in or registers, then redirects to redirectTo.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.rejected(c, req, nil, domain.MsgFormNotSubmitted)
		return
	}

	var (
		user *domain.User
		err  error
	)
	if req.LoginType == dto.LoginTypeRegister {
		user, err = h.authService.Register(c.Request.Context(), req.Username, req.Password)
	} else {
		user, err = h.authService.Login(c.Request.Context(), req.Username, req.Password)
	}
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) && (domain.IsValidationError(err) || domain.IsConflict(err)) {
			h.rejected(c, req, de, "")
			return
		}
		_ = c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	if err := h.sessions.Create(c.Writer, user.ID); err != nil {
		_ = c.Error(err)
		response.InternalError(c, middleware.GetRequestID(c))
		return
	}
	response.Redirect(c, safeRedirect(req.RedirectTo))
}

// Logout ends the session.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Destroy(c.Writer)
	response.Redirect(c, "/login")
}

// rejected re-renders the login form with a 400. A field-less domain error
// is shown as a form-level error.
func (h *AuthHandler) rejected(c *gin.Context, req dto.LoginRequest, de *domain.DomainError, formError string) {
	page := view.LoginPage{
		LoginType:  req.LoginType,
		Username:   req.Username,
		RedirectTo: safeRedirect(req.RedirectTo),
		FormError:  formError,
	}
	if de != nil {
		switch de.Field {
		case "username":
			page.UsernameError = de.Message
		case "password":
			page.PasswordError = de.Message
		default:
			page.FormError = de.Message
		}
	}
	c.HTML(http.StatusBadRequest, view.PageLogin, page)
}

// safeRedirect only allows same-site absolute paths.
func safeRedirect(to string) string {
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") || strings.HasPrefix(to, "/\\") {
		return defaultRedirect
	}
	return to
}
