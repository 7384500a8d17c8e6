package structure

import "strings"

// forbiddenChars are characters which are not allowed in a file name on at least
// one of the supported operating systems.
const forbiddenChars = `\/:*?"<>|`

var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// isReserved checks the name and its part before the first dot against the
// device names. "CON.txt" is reserved as well as "CON".
func isReserved(name string) bool {
	upper := strings.ToUpper(name)
	if _, found := reservedNames[upper]; found {
		return true
	}
	stem, _, _ := strings.Cut(upper, ".")
	_, found := reservedNames[stem]
	return found
}

// IsValidName returns true if segment can be used as a file or directory name.
func IsValidName(segment string) bool {
	if strings.TrimSpace(segment) == "" {
		return false
	}
	if strings.ContainsAny(segment, forbiddenChars) {
		return false
	}
	if strings.HasSuffix(segment, " ") || strings.HasSuffix(segment, ".") {
		return false
	}
	return !isReserved(segment)
}

// SplitPath splits fileName on both "/" and "\" separators. Empty segments are
// kept, so "a//b" yields an empty segment which is not a valid name.
func SplitPath(fileName string) []string {
	return strings.Split(strings.ReplaceAll(fileName, `\`, "/"), "/")
}

// InvalidSegment returns the first segment of fileName which is not a valid name.
func InvalidSegment(fileName string) (string, bool) {
	for _, segment := range SplitPath(fileName) {
		if !IsValidName(segment) {
			return segment, true
		}
	}
	return "", false
}
