package http

import (
	"net/http"

	"github.com/aussiebroadwan/ums/internal/ums/domain"
	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/validate"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/idx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
	"github.com/aussiebroadwan/ums/pkg/umssdk"
)

type RegisterHandler struct {
	router *Router
}

// ServeHTTP creates an account and logs it in.
//
//	@Summary		Register an account
//	@Description	Validates the sign up form, creates the account and sets the session cookie.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		umssdk.RegisterRequest	true	"Sign up form"
//	@Success		201		{object}	umssdk.UserResponse		"The new account"
//	@Failure		400		{object}	umssdk.ErrorResponse	"Validation failed; details lists every invalid field"
//	@Failure		409		{object}	umssdk.ErrorResponse	"Email already exists"
//	@Failure		429		{object}	umssdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	umssdk.ErrorResponse	"Internal server error"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req umssdk.RegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	form := validate.RegisterForm{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
	}
	if errs := form.Validate(); errs.HasErrors() {
		umssdk.NewValidationError("Please fix the errors before submitting", errs).WriteError(w)
		return
	}

	slot := idx.New().String()
	sess, err := session.Open(ctx, h.router.store, h.router.hasher, slot)
	if err != nil {
		log.Error("failed to open session", "err", err)
		umssdk.ErrServerError.WriteError(w)
		return
	}

	ok, err := sess.Register(ctx, domain.Registration{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		log.Error("registration failed", "err", err)
		umssdk.ErrServerError.WithMessage("Registration failed. Please try again.").WriteError(w)
		return
	}
	if !ok {
		umssdk.ErrEmailTaken.WriteError(w)
		return
	}

	if err := h.router.setSessionCookie(w, slot); err != nil {
		log.Error("failed to sign session cookie", "err", err)
		umssdk.ErrServerError.WriteError(w)
		return
	}
	h.router.dropPreviousSlot(r, slot)

	user, _ := sess.Current()
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}
