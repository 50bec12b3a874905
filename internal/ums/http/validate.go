package http

import (
	"net/http"

	"github.com/aussiebroadwan/ums/internal/ums/validate"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/umssdk"
)

// ValidateHandler godoc
//
//	@Summary		Validate one field
//	@Description	Returns the message for a single form field, as a form would show it on every keystroke.
//	@Description	Mode selects the rule set: the password rules differ between register and login.
//	@Tags			Validation
//	@Accept			json
//	@Produce		json
//	@Param			request	body		umssdk.ValidateFieldRequest		true	"Field to validate"
//	@Success		200		{object}	umssdk.ValidateFieldResponse	"Empty error when valid"
//	@Failure		400		{object}	umssdk.ErrorResponse			"Unknown mode or malformed body"
//	@Router			/v1/validate [post].
func ValidateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req umssdk.ValidateFieldRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		mode, ok := validate.ParseMode(req.Mode)
		if !ok {
			umssdk.ErrInvalidRequest.WithMessage("mode must be register, login or profile").WriteError(w)
			return
		}

		msg := validate.Field(req.Field, req.Value, validate.Context{
			Mode:     mode,
			Password: req.Password,
		})
		httpx.WriteJSON(w, http.StatusOK, umssdk.ValidateFieldResponse{
			Field: req.Field,
			Valid: msg == "",
			Error: msg,
		})
	}
}
