// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package upload stores candidate résumé files on disk.
//
// Files are renamed to <unix-ms>-<random>-<sanitized name> and written under
// a managed directory (created on first use). The size ceiling is enforced
// before any bytes hit the disk; no content-type validation is performed.
package upload
