package http

import (
	"net/http"

	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
)

type LogoutHandler struct {
	router *Router
}

// ServeHTTP ends the session. It always succeeds and always clears the cookie.
//
//	@Summary		Log out
//	@Description	Clears the session slot and the session cookie. Succeeds without a session too.
//	@Tags			Account
//	@Security		SessionCookie
//	@Success		204	"Logged out"
//	@Router			/v1/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if slot := httpx.SessionIDFromContext(ctx); slot != "" {
		sess, err := session.Open(ctx, h.router.store, h.router.hasher, slot)
		if err == nil {
			err = sess.Logout(ctx)
		}
		if err != nil {
			// The cookie is cleared regardless; housekeeping expires the slot.
			slogx.FromContext(ctx).Error("failed to clear session", "err", err)
		}
	}

	h.router.clearSessionCookie(w)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
