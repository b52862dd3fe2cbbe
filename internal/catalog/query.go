package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// AllValues is the selector value that disables the genre or member filter.
const AllValues = "all"

// Query is the immutable set of browse inputs for one request.
type Query struct {
	Q      string `json:"q"`
	Genre  string `json:"genre"`
	Member string `json:"member"`
	Page   int    `json:"page"`
}

// ParseQuery reads q, genre, member and page from a query string. Missing
// selectors default to "all"; a missing, non-numeric or non-positive page
// becomes 1.
func ParseQuery(values url.Values) Query {
	q := Query{
		Q:      strings.TrimSpace(values.Get("q")),
		Genre:  values.Get("genre"),
		Member: values.Get("member"),
		Page:   1,
	}
	if q.Genre == "" {
		q.Genre = AllValues
	}
	if q.Member == "" {
		q.Member = AllValues
	}
	if page, err := strconv.Atoi(strings.TrimSpace(values.Get("page"))); err == nil && page > 0 {
		q.Page = page
	}
	return q
}

// Values is the inverse of ParseQuery. Defaults are left out so that links
// built from it stay short.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	if q.Genre != "" && q.Genre != AllValues {
		v.Set("genre", q.Genre)
	}
	if q.Member != "" && q.Member != AllValues {
		v.Set("member", q.Member)
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// FiltersActive reports whether any filter criterion narrows the result.
func (q Query) FiltersActive() bool {
	return strings.TrimSpace(q.Q) != "" || selects(q.Genre) || selects(q.Member)
}

func selects(selector string) bool {
	return selector != "" && selector != AllValues
}
