// Package prompt asks before tbl replaces a file the user already has.
//
// Prompts draw on stderr so stdout stays clean for piping. [Overwrite]
// offers to keep, replace or back up an existing config file.
package prompt
