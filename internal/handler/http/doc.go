// SPDX-License-Identifier: Apache-2.0

// Package http exposes the authentication engine over HTTP: the JSON API
// under /api, the emailed self-service confirmation links, and the
// peer-service endpoints (sealed user context and the deauthorization
// webhook).
package http
