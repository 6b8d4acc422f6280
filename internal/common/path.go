package common

import "strings"

// SkipDir reports whether a directory should be left out of a source walk:
// hidden directories, vendor, testdata and names starting with "_".
func SkipDir(name string) bool {
	if name == "." || name == ".." {
		return false
	}

	return strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "_") ||
		name == "vendor" ||
		name == "testdata"
}
