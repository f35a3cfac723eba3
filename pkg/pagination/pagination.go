package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 10
	// MaxPageSize caps how many records any page can hold.
	MaxPageSize = 100
)

// Page is one slice of a larger list plus the page count for that list.
type Page[T any] struct {
	Items      []T
	TotalPages int
}

// NormalizePageSize enforces the configured default and maximum sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// Paginate returns the 1-indexed page of items and the total page count.
// TotalPages is 0 for an empty list. Out-of-range pages yield an empty
// items slice rather than an error.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	pageSize = NormalizePageSize(pageSize)

	totalPages := (len(items) + pageSize - 1) / pageSize

	if page < 1 || len(items) == 0 {
		return Page[T]{Items: []T{}, TotalPages: totalPages}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return Page[T]{Items: []T{}, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{Items: out, TotalPages: totalPages}
}
