package dbpager

const (
	MaxItemCountPerPage     = 100
	DefaultItemCountPerPage = 10
)

// IsNormalizedItemCountPerPage returns the item count clamped to
// (0, maxItemCountPerPage] and whether it was already within bounds.
// Non-positive values fall back to DefaultItemCountPerPage.
func IsNormalizedItemCountPerPage(itemCountPerPage int, maxItemCountPerPage int) (int, bool) {
	if itemCountPerPage <= 0 {
		return DefaultItemCountPerPage, false
	} else if itemCountPerPage > maxItemCountPerPage {
		return maxItemCountPerPage, false
	}

	return itemCountPerPage, true
}

func NormalizeItemCountPerPageMax(itemCountPerPage int, maxItemCountPerPage int) int {
	ret, _ := IsNormalizedItemCountPerPage(itemCountPerPage, maxItemCountPerPage)
	return ret
}

func NormalizeItemCountPerPage(itemCountPerPage int) int {
	return NormalizeItemCountPerPageMax(itemCountPerPage, MaxItemCountPerPage)
}
