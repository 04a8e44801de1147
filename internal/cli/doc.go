// Package cli implements the uasig command line tool.
//
// Commands:
//
//	uasig parse [signature...]   decode arguments or stdin lines
//	uasig format [flags]         build a signature from flags and USERAGENT_* variables
//	uasig serve [flags]          run the inspector HTTP API
//
// parse and format accept -o text|json|yaml. Parse failures are logged to stderr
// through pkg/logger and make the command exit with status 1.
package cli
