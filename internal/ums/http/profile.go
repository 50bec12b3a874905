package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ums/internal/ums/domain"
	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/validate"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
	"github.com/aussiebroadwan/ums/pkg/umssdk"
)

type ProfileHandler struct {
	router *Router
}

// HandleGet returns the logged in user.
//
//	@Summary		Get profile
//	@Description	Returns the user logged in on the session cookie.
//	@Tags			Profile
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	umssdk.UserResponse		"The logged in user"
//	@Failure		401	{object}	umssdk.ErrorResponse	"No active session"
//	@Router			/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionFromContext(r.Context()).Current()
	if !ok {
		umssdk.ErrUnauthenticated.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandlePatch edits the logged in user's profile.
//
//	@Summary		Update profile
//	@Description	Omitted fields keep their value. The resulting profile is validated as a whole and saved with surrounding whitespace trimmed.
//	@Tags			Profile
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		umssdk.ProfileUpdateRequest	true	"Profile fields to change"
//	@Success		200		{object}	umssdk.UserResponse			"The updated user"
//	@Failure		400		{object}	umssdk.ErrorResponse		"Validation failed"
//	@Failure		401		{object}	umssdk.ErrorResponse		"No active session"
//	@Failure		409		{object}	umssdk.ErrorResponse		"Email already exists"
//	@Failure		500		{object}	umssdk.ErrorResponse		"Internal server error"
//	@Router			/v1/profile [patch].
func (h *ProfileHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	sess := sessionFromContext(ctx)

	current, ok := sess.Current()
	if !ok {
		umssdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req umssdk.ProfileUpdateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	form := profileForm(current, req)
	if errs := form.Validate(); errs.HasErrors() {
		umssdk.NewValidationError("Please fix the errors before saving", errs).WriteError(w)
		return
	}

	trimmed := form.Trimmed()
	ok, err := sess.UpdateUser(ctx, domain.UserPatch{
		FirstName: &trimmed.FirstName,
		LastName:  &trimmed.LastName,
		Email:     &trimmed.Email,
		Phone:     &trimmed.Phone,
	})
	switch {
	case errors.Is(err, session.ErrEmailTaken):
		umssdk.ErrEmailTaken.WriteError(w)
		return
	case err != nil:
		log.Error("profile update failed", "err", err)
		umssdk.ErrServerError.WithMessage("Failed to update profile. Please try again.").WriteError(w)
		return
	case !ok:
		h.router.clearSessionCookie(w)
		umssdk.ErrUnauthenticated.WriteError(w)
		return
	}

	updated, _ := sess.Current()
	log.Info("profile updated")
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(updated))
}

// profileForm fills the edit form from the current user and overlays the
// fields present in the request.
func profileForm(u domain.User, req umssdk.ProfileUpdateRequest) validate.ProfileForm {
	form := validate.ProfileForm{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	if req.FirstName != nil {
		form.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		form.LastName = *req.LastName
	}
	if req.Email != nil {
		form.Email = *req.Email
	}
	if req.Phone != nil {
		form.Phone = *req.Phone
	}
	return form
}
