// Package format substitutes positional {N} placeholders in templates.
package format

import (
	"regexp"
	"strconv"

	"github.com/baditaflorin/go_strutil/internal/core/stringify"
	"github.com/baditaflorin/go_strutil/internal/pool"
)

var placeholder = regexp.MustCompile(`\{(\d+)\}`)

// Format replaces each {N} in template with the string form of args[N]. Placeholders
// naming an argument that does not exist, or a nil argument, are left untouched.
// Substituted text is never scanned again.
func Format(template string, args ...interface{}) string {
	matches := placeholder.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)
	sb.Grow(len(template))

	last := 0
	for _, m := range matches {
		sb.WriteString(template[last:m[0]])
		if value, ok := lookup(template[m[2]:m[3]], args); ok {
			sb.WriteString(value)
		} else {
			sb.WriteString(template[m[0]:m[1]])
		}
		last = m[1]
	}
	sb.WriteString(template[last:])

	return sb.String()
}

// lookup resolves a placeholder index. Only canonical decimal indexes address an
// argument, so "{01}" never refers to args[1].
func lookup(index string, args []interface{}) (string, bool) {
	if len(index) > 1 && index[0] == '0' {
		return "", false
	}
	n, err := strconv.Atoi(index)
	if err != nil || n >= len(args) {
		return "", false
	}
	return stringify.Value(args[n])
}
