// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags with environment
variable fallbacks.

Network settings (-p, -d, -t) default sensibly for local development. The
secrets (ADMIN_USER, ADMIN_PASSWORD, JWT_SECRET) also fall back to fixed dev
values; Config.InsecureDefaults reports which ones did so main can log a
warning per secret at startup.
*/
package cliparse
