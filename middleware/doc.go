// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Admin Gate

RequireAdmin wraps a handler so it only runs with a valid bearer token:

	mux.HandleFunc("GET /api/candidates",
		middleware.RequireAdmin(tokens, m, candidateHandler.List))

Missing headers, malformed headers, bad signatures, and expired tokens all
produce a 401 JSON body and bump the auth-failure counter. The verified
username is available to handlers via middleware.AdminUser(ctx).

# Helpers

JSONResponse, ErrorResponse, and ParseJSONBody centralize JSON encoding.
WithLogging logs start/completion per request; WithMetrics feeds the
endpoint latency histogram; CORS allows the frontend's cross-origin calls.
*/
package middleware
