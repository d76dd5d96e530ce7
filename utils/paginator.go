package utils

import "strconv"

// Page describes one slice of a paginated listing.
type Page struct {
	Number      int  `json:"number"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`

	// Half-open bounds into the full item slice.
	Start int `json:"-"`
	End   int `json:"-"`
}

// Paginate resolves a raw page token against a listing of total items,
// perPage at a time. A missing or non-integer token resolves to page 1;
// a token outside [1, TotalPages] resolves to the last page. Bad input
// clamps, it never fails.
func Paginate(total, perPage int, token string) Page {
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1 // an empty first page is still a page
	}

	number, err := strconv.Atoi(token)
	if err != nil {
		number = 1
	} else if number < 1 || number > totalPages {
		number = totalPages
	}

	start := (number - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page{
		Number:      number,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
		Start:       start,
		End:         end,
	}
}
