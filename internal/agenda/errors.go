package agenda

import (
	"errors"
	"fmt"
)

// NotFoundError reports a deletion request that matched no events. No
// provider mutation has happened when it is returned.
type NotFoundError struct {
	Title string
	Date  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no events found matching %q on %s", e.Title, e.Date)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
