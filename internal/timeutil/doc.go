// Package timeutil normalizes the ISO-8601 superset used by the Google
// Calendar API into concrete instants.
//
// Three policies live here, and they are deliberately distinct:
//
//   - ParseInZone: display-side normalization. Offsetless input anchors to
//     local midnight in the reference zone.
//   - ParseAnchored: deletion-target parsing. Offsetless input keeps its
//     wall-clock time in the reference zone.
//   - ParseUTCBound: query-window bounds. Offsetless input is read as UTC.
//
// All three are pure functions and fail with ErrParse on malformed input.
package timeutil
