// Package logging builds the zap logger used by the command line tool.
//
// The format is either console, for human-readable output on a terminal, or
// json, one object per line. The level accepts any zapcore level name.
package logging
