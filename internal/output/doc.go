// Package output renders trend reports for people and machines.
//
// Two stream formats are supported:
//   - text: the report document written to disk and sent to the webhook
//   - json: the full structured report
//
// Use [GetWriter] to obtain a [Writer] for a format string. [Render] returns
// the text document as a string, and [SaveDocx] exports a Word copy.
package output
