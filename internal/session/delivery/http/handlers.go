package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/internal/middleware"
	"shopfront/internal/model"
	"shopfront/pkg/errs"
	"shopfront/pkg/response"
	"shopfront/pkg/storeapi"
	"shopfront/pkg/token"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionView struct {
	State string    `json:"state"`
	User  *userView `json:"user,omitempty"`
}

type userView struct {
	ID    string       `json:"id"`
	Email string       `json:"email"`
	Roles []token.Role `json:"roles"`
}

func newSessionView(state string, identity *model.Identity) sessionView {
	view := sessionView{State: state}
	if identity != nil {
		view.User = &userView{
			ID:    identity.Claims.Subject,
			Email: identity.Claims.Email,
			Roles: identity.Claims.Roles,
		}
	}
	return view
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("body", err.Error())))
		return
	}

	identity, err := h.uc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, newSessionView("authenticated", identity))
}

func (h *Handler) Logout(c *gin.Context) {
	h.uc.Logout(c.Request.Context())
	response.OKMessage(c, "logged out")
}

func (h *Handler) Session(c *gin.Context) {
	snap := h.uc.Snapshot()
	response.OK(c, newSessionView(snap.State.String(), snap.Identity))
}

func (h *Handler) Refresh(c *gin.Context) {
	identity, err := h.uc.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			c.Redirect(http.StatusFound, middleware.LoginRoute)
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, newSessionView("authenticated", identity))
}

func (h *Handler) Register(c *gin.Context) {
	var req storeapi.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("body", err.Error())))
		return
	}
	if err := h.accounts.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "account created; confirm the address via the emailed token")
}

func (h *Handler) ConfirmEmail(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("token", err.Error())))
		return
	}
	if err := h.accounts.ConfirmEmail(c.Request.Context(), req.Token); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "email confirmed")
}

func (h *Handler) ResendConfirmation(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("email", err.Error())))
		return
	}
	if err := h.accounts.ResendConfirmation(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "confirmation email sent")
}

func (h *Handler) Profile(c *gin.Context) {
	profile, err := h.accounts.Profile(c.Request.Context())
	if err != nil {
		h.failAuthAware(c, err)
		return
	}
	response.OK(c, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var profile model.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("body", err.Error())))
		return
	}
	if err := h.accounts.UpdateProfile(c.Request.Context(), profile); err != nil {
		h.failAuthAware(c, err)
		return
	}
	response.OKMessage(c, "profile updated")
}

// failAuthAware handles the one failure that always changes the session: a
// 401 from any authenticated call makes the identity absent and the next
// render show the login route.
func (h *Handler) failAuthAware(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrUnauthorized) {
		h.uc.Logout(c.Request.Context())
		c.Redirect(http.StatusFound, middleware.LoginRoute)
		return
	}
	response.Error(c, err)
}
