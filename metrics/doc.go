// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the Prometheus instrumentation for the portal.
// Each Metrics value carries its own registry so tests can build as many
// as they need without duplicate-registration panics.
package metrics
