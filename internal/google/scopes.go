package google

// DefaultOAuthScopes are the Google OAuth scopes calbridge requests.
//
// Only full Calendar access is needed: the tool surface lists, creates and
// deletes events but touches no other Google service.
var DefaultOAuthScopes = []string{
	"https://www.googleapis.com/auth/calendar",
}
