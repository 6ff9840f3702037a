/*
Package trackersdk is the client SDK of the tracker service, and the home of
the error and wire types the server writes.

# Client vs Session

  - Client: public endpoints (registration, verification, login, health)
  - Session: authenticated endpoints, with automatic token refresh

Register, verify and sign in:

	client := trackersdk.NewClient("http://localhost:8080")

	_, err := client.Register(ctx, trackersdk.RegisterRequest{
		Email:           "ann@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	session, err := client.Login(ctx, "ann@example.com", "secret1")
	var tf *trackersdk.TwoFactorRequiredError
	if errors.As(err, &tf) {
		session, err = client.VerifyTwoFactor(ctx, tf.Challenge, code)
	}

	me, err := session.Me(ctx)

# Errors

Every non-2xx response is returned as an *APIError. Access gate denials carry
Code "access_blocked" and the gate Reason, e.g. "pending_admin":

	var apiErr *trackersdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == trackersdk.ErrorCodeAccessBlocked {
		fmt.Println("blocked:", apiErr.Reason)
	}

# Thread Safety

Sessions are safe for concurrent use.
*/
package trackersdk
