// Package padding pads values to a fixed width with a possibly multi-character fill.
package padding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_strutil/internal/core/domain"
	"github.com/baditaflorin/go_strutil/internal/core/stringify"
	"github.com/baditaflorin/go_strutil/internal/pool"
)

// MaxWidth is the largest target length, in characters, that Left and Right will pad to.
const MaxWidth = 1 << 24

// Left pads val on the left to maxLen characters. When fill does not divide the gap,
// the partial tile is the tail of fill and comes first: [suffix][fill...][value].
// Values already at least maxLen long are returned unchanged.
func Left(val interface{}, maxLen int, fill string) (string, error) {
	str, full, partial, err := plan(val, maxLen, fill)
	if err != nil || full == 0 && partial == 0 {
		return str, err
	}

	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)
	sb.Grow(len(str) + (full+1)*len(fill))

	if partial > 0 {
		sb.WriteString(lastRunes(fill, partial))
	}
	sb.WriteString(strings.Repeat(fill, full))
	sb.WriteString(str)

	return sb.String(), nil
}

// Right pads val on the right to maxLen characters. The partial tile is the head of
// fill and comes last: [value][fill...][prefix].
func Right(val interface{}, maxLen int, fill string) (string, error) {
	str, full, partial, err := plan(val, maxLen, fill)
	if err != nil || full == 0 && partial == 0 {
		return str, err
	}

	sb := pool.GetBuilder()
	defer pool.PutBuilder(sb)
	sb.Grow(len(str) + (full+1)*len(fill))

	sb.WriteString(str)
	sb.WriteString(strings.Repeat(fill, full))
	if partial > 0 {
		sb.WriteString(firstRunes(fill, partial))
	}

	return sb.String(), nil
}

// plan stringifies val and works out how many whole and partial fill tiles close the
// gap to maxLen. Widths are counted in characters, not bytes. Widths above MaxWidth
// are rejected before anything is allocated.
func plan(val interface{}, maxLen int, fill string) (str string, full, partial int, err error) {
	fillLen := utf8.RuneCountInString(fill)
	if fillLen == 0 {
		return "", 0, 0, fmt.Errorf("%w: padding fill must not be empty", domain.ErrInvalidArgument)
	}

	str, _ = stringify.Value(val)
	gap := maxLen - utf8.RuneCountInString(str)
	if gap <= 0 {
		return str, 0, 0, nil
	}
	if maxLen > MaxWidth {
		return "", 0, 0, fmt.Errorf("%w: padding width %d exceeds %d", domain.ErrInvalidArgument, maxLen, MaxWidth)
	}

	return str, gap / fillLen, gap % fillLen, nil
}

func firstRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func lastRunes(s string, n int) string {
	i := len(s)
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}
