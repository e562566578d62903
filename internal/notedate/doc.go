// Package notedate resolves a note's original date.
//
// A `date: ` line in the note body wins and is returned verbatim; otherwise
// the file's creation time is used, formatted as YYYY-MM-DD in local time.
package notedate
