package pagination

// Pagination is 1-indexed at the API boundary. Limits are clamped into
// [1, MaxLimit] so malformed input cannot exhaust the database.
const (
	DefaultLimit = 10
	DefaultPage  = 1
	MaxLimit     = 1000
)

// ClampLimit forces limit into [1, MaxLimit].
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Normalize clamps limit and converts the 1-indexed page into a row offset.
func Normalize(limit, page int) (clampedLimit, offset int) {
	clampedLimit = ClampLimit(limit)
	if page < 1 {
		page = 1
	}
	return clampedLimit, (page - 1) * clampedLimit
}
