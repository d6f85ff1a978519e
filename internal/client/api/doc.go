// Package api implements the HTTP client for the clothing-store API:
// JSON request/response handling, bearer-token authorization, and a typed
// method per endpoint. Responses are validated into domain models at this
// boundary so the rest of the client never sees raw wire shapes.
package api
