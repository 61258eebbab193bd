// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the GesTalent portal API server.

GesTalent is a recruitment portal: candidates register with contact data and
a résumé, then optionally complete a competencies assessment and a Big Five
personality inventory. An administrator lists the submissions through
token-gated endpoints.

# Starting the Server

The server runs out of the box against a local sqlite file:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

A .env file in the working directory is loaded automatically.

# Configuration

Optional settings (all have defaults):

  - PORT (-p): listen port (default: 4000)
  - DATABASE_URL (-d): connection string or sqlite file (default: gestalent.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_USER / ADMIN_PASSWORD: admin credentials
  - JWT_SECRET: token signing secret
  - UPLOAD_DIR, UPLOAD_MAX_MB: résumé storage
  - PUBLIC_DIR: frontend shell directory
  - ITEMBANK_PATH: Big Five question bank JSON

The three secrets fall back to fixed development values when unset; every
fallback is logged loudly at startup and must not reach production.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (candidates, assessments, bigfive, login)
  - router: Route definitions using Go 1.22+ routing
  - middleware: admin token gate, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: admin token issuance and verification
  - upload: résumé file storage
  - itembank: static questionnaire loading
  - metrics: Prometheus instrumentation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
