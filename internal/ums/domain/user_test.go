package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserPatchApply(t *testing.T) {
	u := User{Email: "a@b.com", FirstName: "Ada", LastName: "Lovelace", Phone: "123"}

	require.True(t, UserPatch{}.IsEmpty())
	require.Equal(t, u, UserPatch{}.Apply(u))

	first, phone := "Augusta", ""
	got := UserPatch{FirstName: &first, Phone: &phone}.Apply(u)

	require.Equal(t, "Augusta", got.FirstName)
	require.Equal(t, "Lovelace", got.LastName)
	require.Equal(t, "a@b.com", got.Email)
	require.Empty(t, got.Phone, "explicit empty clears the phone")
}

func TestFullName(t *testing.T) {
	require.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	require.Equal(t, "Ada", User{FirstName: "Ada"}.FullName())
	require.Equal(t, "Lovelace", User{LastName: "Lovelace"}.FullName())
}
