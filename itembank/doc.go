// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package itembank loads the static Big Five questionnaire from a bundled
// JSON resource. The bank is loaded once at startup and handed to the
// handlers that serve it; there is no ambient global.
package itembank
