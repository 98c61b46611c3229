package main

// Exit codes shared by all conbib commands
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, missing input file)
	ExitConfigError = 2 // Configuration error (unreadable or invalid config)
	ExitDataError   = 3 // Data error (malformed input, database failure)
)
