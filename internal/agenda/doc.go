// Package agenda implements the calendar façade behind the calbridge tool
// surface: fetching events from single calendars, aggregating them across
// the configured calendar set into one time-ordered sequence, and deleting
// events matched by title fragment and date.
//
// The package is stateless between calls. Every operation re-queries the
// provider; events exist only as normalized values flowing through one
// tool invocation. Provider failures propagate unmodified with no retry.
package agenda
