// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the portal's handlers into an http.ServeMux using
// Go 1.22+ method routing. Admin listings are wrapped with the bearer-token
// gate; everything not matched falls through to the SPA shell.
package router
