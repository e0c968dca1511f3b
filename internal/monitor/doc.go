// Package monitor runs one pass of the trend monitor: fetch candidates,
// build and render the report, then write it to disk and post it to the
// webhook.
//
// Network failures are logged and the run continues with whatever data was
// gathered. Only a failure to write the report file stops the run.
package monitor
