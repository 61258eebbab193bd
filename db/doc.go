// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db creates the database schema for the GesTalent portal.
//
// The schema is written in the portable subset shared by sqlite and
// postgres; the same statements run against either driver.
package db
