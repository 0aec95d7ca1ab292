// Package google manages OAuth2 credentials for the Google Calendar API.
//
// Credential material lives in a restricted-access local file (directory
// 0700, file 0600) and is reused across invocations until expiry. Expired
// tokens are refreshed transparently through the token source and the
// refreshed token is persisted again. First-time acquisition goes through
// the installed-app consent flow: the user visits the auth URL, grants
// access, and pastes the authorization code back.
//
// The TokenProvider interface is the only thing the rest of the system
// depends on; tests and alternative deployments can substitute their own
// credential source.
package google
