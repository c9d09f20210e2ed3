package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound requests to protected collaborator routes.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is the HTTP header carrying a client-generated request
// identifier, attached to every collaborator request for correlation.
const RequestIDHeaderName = "X-Request-Id"
