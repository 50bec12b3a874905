package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ums/internal/ums/domain"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
	"github.com/aussiebroadwan/ums/pkg/umssdk"
)

// decodeRequest decodes a JSON body into dst, writing the error response
// itself and reporting false when the body is unusable.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := httpx.DecodeJSON(w, r, dst)
	if err == nil {
		return true
	}

	slogx.FromContext(r.Context()).Debug("rejecting request body", "err", err)
	switch {
	case errors.Is(err, httpx.ErrUnsupportedMediaType):
		umssdk.ErrUnsupportedMediaType.WriteError(w)
	case errors.Is(err, httpx.ErrBodyTooLarge):
		umssdk.ErrInvalidRequest.WithMessage("request body too large").WriteError(w)
	default:
		umssdk.ErrInvalidRequest.WriteError(w)
	}
	return false
}

func toUserResponse(u domain.User) umssdk.UserResponse {
	return umssdk.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
