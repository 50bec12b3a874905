package http

import (
	"net/http"

	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/validate"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/idx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
	"github.com/aussiebroadwan/ums/pkg/umssdk"
)

type LoginHandler struct {
	router *Router
}

// ServeHTTP logs a user in on a fresh session slot.
//
//	@Summary		Log in
//	@Description	Checks the email and password and sets the session cookie.
//	@Description	The password is only checked for presence before the credential lookup.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		umssdk.LoginRequest		true	"Sign in form"
//	@Success		200		{object}	umssdk.UserResponse		"The logged in user"
//	@Failure		400		{object}	umssdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	umssdk.ErrorResponse	"Invalid email or password"
//	@Failure		429		{object}	umssdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	umssdk.ErrorResponse	"Internal server error"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req umssdk.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	form := validate.LoginForm{Email: req.Email, Password: req.Password}
	if errs := form.Validate(); errs.HasErrors() {
		umssdk.NewValidationError("Please fix the errors before logging in", errs).WriteError(w)
		return
	}

	// Every login binds a new slot; the old one is dropped below.
	slot := idx.New().String()
	sess, err := session.Open(ctx, h.router.store, h.router.hasher, slot)
	if err != nil {
		log.Error("failed to open session", "err", err)
		umssdk.ErrServerError.WriteError(w)
		return
	}

	ok, err := sess.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Error("login failed", "err", err)
		umssdk.ErrServerError.WithMessage("Login failed. Please try again.").WriteError(w)
		return
	}
	if !ok {
		umssdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	if err := h.router.setSessionCookie(w, slot); err != nil {
		log.Error("failed to sign session cookie", "err", err)
		umssdk.ErrServerError.WriteError(w)
		return
	}
	h.router.dropPreviousSlot(r, slot)

	user, _ := sess.Current()
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
