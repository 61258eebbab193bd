// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin token service and credential checks.

# Admin Tokens

Admin tokens are HS256 JWTs carrying the admin username and an 8-hour expiry:

	svc := auth.NewTokenService(secret, cliparse.TokenTTL)
	token, expiresAt, err := svc.Issue("admin")
	claims, err := svc.Verify(token)

Verify pins the algorithm to HS256 and rejects bad signatures, malformed
tokens, and expired tokens with ErrInvalidToken.

# Credentials

Login attempts are compared against the configured admin credentials with
constant-time equality:

	err := auth.CheckCredentials(user, pass, cfg.AdminUser, cfg.AdminPassword)

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(12)  // 24 hex characters
*/
package auth
