package dto

// SearchParams is the typed form of the /hotels/search query string.
// Every field is optional; absence imposes no constraint.
type SearchParams struct {
	Destination *string
	AdultCount  *int
	ChildCount  *int
	Facilities  []string
	Types       []string
	Stars       []int
	MaxPrice    *int
	SortOption  string
	Page        int
}
