// Package pagination turns list query parameters into store list options.
package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// MaxLimit caps the page size a client may request.
const MaxLimit = 500

// Parse reads the limit, offset and sort query values. Empty values select the
// defaults: no limit, no offset, newest first.
func Parse(limit, offset, sort string) (domain.ListOptions, error) {
	var opts domain.ListOptions

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("limit must be a non-negative integer")
		}
		opts.Limit = min(n, MaxLimit)
	}
	if offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("offset must be a non-negative integer")
		}
		opts.Offset = n
	}

	switch strings.ToLower(strings.TrimSpace(sort)) {
	case "", "desc":
	case "asc":
		opts.Ascending = true
	default:
		return opts, fmt.Errorf("sort must be asc or desc")
	}
	return opts, nil
}

// Window returns the [start, end) slice bounds for n records under opts.
func Window(n int, opts domain.ListOptions) (int, int) {
	start := min(opts.Offset, n)
	end := n
	if opts.Limit > 0 {
		end = min(start+opts.Limit, n)
	}
	return start, end
}
