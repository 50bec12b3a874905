package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
	"github.com/aussiebroadwan/ums/pkg/umssdk"
)

type sessionCtxKey struct{}

// slotFromCookie returns the session slot named by a valid session cookie,
// or "" when the cookie is missing, tampered with or expired.
func (r *Router) slotFromCookie(req *http.Request) string {
	c, err := req.Cookie(umssdk.SessionCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	claims, err := r.signer.Verify(c.Value)
	if err != nil {
		slogx.FromContext(req.Context()).Debug("ignoring session cookie", "err", err)
		return ""
	}
	return claims.SID
}

// identify records the slot of a valid session cookie in the request
// context. Requests without one pass through anonymously.
func (r *Router) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if slot := r.slotFromCookie(req); slot != "" {
			req = req.WithContext(httpx.WithIdentity(req.Context(), slot, ""))
		}
		next.ServeHTTP(w, req)
	})
}

// requireSession opens the session named by the request and rejects the
// request with 401 when nobody is logged in on it. It must run after
// identify.
func (r *Router) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		slot := httpx.SessionIDFromContext(ctx)
		if slot == "" {
			umssdk.ErrUnauthenticated.WriteError(w)
			return
		}

		sess, err := session.Open(ctx, r.store, r.hasher, slot)
		if err != nil {
			slogx.FromContext(ctx).Error("failed to open session", "err", err)
			umssdk.ErrServerError.WriteError(w)
			return
		}

		user, ok := sess.Current()
		if !ok {
			r.clearSessionCookie(w)
			umssdk.ErrUnauthenticated.WriteError(w)
			return
		}

		ctx = httpx.WithIdentity(ctx, slot, user.ID)
		ctx = slogx.With(ctx, "user_id", user.ID)
		ctx = context.WithValue(ctx, sessionCtxKey{}, sess)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func sessionFromContext(ctx context.Context) *session.Store {
	s, _ := ctx.Value(sessionCtxKey{}).(*session.Store)
	return s
}

func (r *Router) setSessionCookie(w http.ResponseWriter, slot string) error {
	now := time.Now()
	token, err := r.signer.Sign(slot, now)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     umssdk.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(r.signer.TTL()),
		MaxAge:   int(r.signer.TTL().Seconds()),
		HttpOnly: true,
		Secure:   r.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (r *Router) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     umssdk.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// dropPreviousSlot clears the slot the request arrived with, if any, once a
// fresh slot has been bound by login or registration.
func (r *Router) dropPreviousSlot(req *http.Request, fresh string) {
	old := r.slotFromCookie(req)
	if old == "" || old == fresh {
		return
	}
	if err := r.store.Sessions().DeleteSession(req.Context(), old); err != nil {
		slogx.FromContext(req.Context()).Warn("failed to drop previous session", "err", err)
	}
}
