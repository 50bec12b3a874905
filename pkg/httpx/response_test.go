package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Email string `json:"email"`
}

func decode(body, contentType string) (payload, error) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	var p payload
	err := httpx.DecodeJSON(httptest.NewRecorder(), req, &p)
	return p, err
}

func TestDecodeJSON(t *testing.T) {
	p, err := decode(`{"email":"a@b.com"}`, "application/json; charset=utf-8")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", p.Email)

	_, err = decode(`{"email":"a@b.com"}`, "text/plain")
	require.ErrorIs(t, err, httpx.ErrUnsupportedMediaType)

	_, err = decode(`{"mail":"a@b.com"}`, "application/json")
	require.Error(t, err, "unknown fields are rejected")

	_, err = decode(`{"email":"a"}{"email":"b"}`, "application/json")
	require.Error(t, err, "trailing objects are rejected")

	_, err = decode(`{"email":"`+strings.Repeat("x", httpx.MaxBodyBytes)+`"}`, "application/json")
	require.ErrorIs(t, err, httpx.ErrBodyTooLarge)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, payload{Email: "a@b.com"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"email":"a@b.com"}`, rec.Body.String())
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("a"), mark("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "handler"}, order)
}
