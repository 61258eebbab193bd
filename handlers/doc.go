// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the GesTalent portal API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - CandidateHandler: registration, email existence check, admin listing
  - AssessmentHandler: competencies questionnaire submission and listing
  - BigFiveHandler: personality inventory items, submission, and listing
  - LoginHandler: admin login and token issuance

Handlers are created via constructor functions that accept their
dependencies explicitly:

	candidateHandler := handlers.NewCandidateHandler(db, cfg, store, m)

# Submission Flow

Candidates register first, then submit questionnaires:

	POST /api/candidates          → Create (JSON or multipart with "cv" file)
	GET  /api/candidates/check    → CheckEmail
	POST /api/assessments         → AssessmentHandler.Submit
	POST /api/bigfive             → BigFiveHandler.Submit

Both Submit handlers require a prior registration under the same normalized
email and reply 400 with MsgRegistrationRequired otherwise. Submissions are
insert-only: repeating one creates a new record.

# Admin Listings

	GET /api/candidates   → CandidateHandler.List
	GET /api/assessments  → AssessmentHandler.List
	GET /api/bigfive      → BigFiveHandler.List

All three are wrapped with middleware.RequireAdmin by the router and return
up to 1000 records, newest first.
*/
package handlers
