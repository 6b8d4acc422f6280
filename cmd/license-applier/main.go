// license-applier keeps license headers of Go source files in shape.
//
// It compares the leading comments of every file against a license template
// and, depending on the action, reports, inserts, replaces or removes the
// header. Templates may contain ${name} variables bound with --set or the
// propertyValues section of the configuration file.
//
// Usage:
//
//	# Insert the license where it is missing
//	license-applier reformat --license-file LICENSE.tmpl --set year=2024 ./...
//
//	# Fail when a file is missing the license
//	license-applier check -l LICENSE.tmpl ./...
//
//	# Replace every header, showing what changes without writing
//	license-applier update -l LICENSE.tmpl --dry-run --diff ./internal
//
//	# Run the action from a config file and keep watching for changes
//	license-applier watch --config .license-applier.yaml
package main

func main() {
	Execute()
}
