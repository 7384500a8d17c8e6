package engines

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

const lineSeparator = "\n"

// MarkerEngine renders plain-text templates with bracketed markers. A marker names
// either a variable, which is replaced by its value, or an optional, which keeps or
// drops the whole line it is placed on.
type MarkerEngine struct {
	open    string
	close   string
	pattern *regexp.Regexp
}

func newMarkerEngine(open, close string) MarkerEngine {
	return MarkerEngine{
		open:  open,
		close: close,
		pattern: regexp.MustCompile(regexp.QuoteMeta(open) + `([a-zA-Z0-9_]+)` +
			regexp.QuoteMeta(close)),
	}
}

// Marker returns the marker text for name.
func (engine MarkerEngine) Marker(name string) string {
	return engine.open + name + engine.close
}

// filterLine processes optional markers of the line. The second returned value is
// false if the line must be dropped.
func (engine MarkerEngine) filterLine(line string, vars map[string]string,
	optionals map[string]bool) (string, bool) {
	for _, match := range engine.pattern.FindAllStringSubmatch(line, -1) {
		marker, name := match[0], match[1]
		// Variables with empty values are handled like unknown markers.
		if vars[name] != "" {
			continue
		}
		if value, found := optionals[name]; found && !value {
			return "", false
		}
		line = strings.Replace(line, marker, "", 1)
	}
	return line, true
}

// substitute replaces every variable marker with its value in a single pass, so
// values are never scanned for markers themselves.
func (engine MarkerEngine) substitute(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, engine.Marker(name), vars[name])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// RenderText applies variables and optionals to the template text.
func (engine MarkerEngine) RenderText(in string, vars map[string]string,
	optionals map[string]bool) string {
	lines := strings.Split(strings.ReplaceAll(in, "\r\n", lineSeparator), lineSeparator)

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if filtered, keep := engine.filterLine(line, vars, optionals); keep {
			kept = append(kept, filtered)
		}
	}

	return engine.substitute(strings.Join(kept, lineSeparator), vars)
}

// RenderFile reads the template from srcPath of fsys and renders it.
func (engine MarkerEngine) RenderFile(fsys billy.Filesystem, srcPath string,
	vars map[string]string, optionals map[string]bool) (string, error) {
	content, err := util.ReadFile(fsys, srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", srcPath, err)
	}
	return engine.RenderText(string(content), vars, optionals), nil
}
