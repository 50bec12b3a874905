/*
Package umssdk provides the wire types and a client for the UMS account
service.

The request and response types in this package are shared by the server
handlers and the client, so both sides always agree on the JSON shape.

# Client

A Client keeps the session cookie in a cookie jar, so calls made after a
successful Register or Login are authenticated:

	client := umssdk.NewClient("http://localhost:8080")

	user, err := client.Register(ctx, umssdk.RegisterRequest{
		Email:           "ada@example.com",
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
		FirstName:       "Ada",
		LastName:        "Lovelace",
	})

	profile, err := client.Profile(ctx)

	err = client.Logout(ctx)

# Errors

Failed calls return an *APIError. Compare against the predefined errors
with errors.Is, which matches on the error code:

	_, err := client.Login(ctx, email, password)
	if errors.Is(err, umssdk.ErrInvalidCredentials) {
		// wrong email or password
	}

Validation failures carry the message of every invalid field in Details,
keyed by the same field names the request body uses.
*/
package umssdk
