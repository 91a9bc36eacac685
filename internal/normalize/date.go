// Package normalize canonicalizes the inconsistent date strings the source
// sites publish.
package normalize

import (
	"fmt"
	"regexp"

	"github.com/araddon/dateparse"
)

// dayFirst matches the "DD-MM-YYYY, HH:MM" format some sources use. It is
// rewritten to ISO order before parsing so the day is not read as a month.
var dayFirst = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4}), \d{2}:\d{2}$`)

// Date rewrites a raw source date into "January 2, 2006" long form.
// Normalization is best-effort: unparseable input is returned unchanged so a
// bad date never drops an item.
func Date(raw string) string {
	s := raw
	if m := dayFirst.FindStringSubmatch(s); m != nil {
		s = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return raw
	}
	return t.Format("January 2, 2006")
}
