package query

import "advocate-directory/internal/domain/entity"

// maxPagesShown is the largest page count rendered without ellipses.
const maxPagesShown = 7

// Window holds the slice bounds of one page over itemCount items.
type Window struct {
	Start      int
	End        int
	TotalPages int
}

// Paginate computes the window for the given page. Out-of-range pages
// produce an empty window with Start == itemCount.
func Paginate(itemCount, page, pageSize int) Window {
	if page < 1 {
		page = entity.DefaultPage
	}
	if pageSize < 1 {
		pageSize = entity.DefaultPageSize
	}
	if itemCount < 0 {
		itemCount = 0
	}

	totalPages := itemCount / pageSize
	if itemCount%pageSize > 0 {
		totalPages++
	}

	// Compare against totalPages before multiplying so huge pages cannot overflow.
	start := itemCount
	if page-1 < totalPages {
		start = (page - 1) * pageSize
	}
	end := start + min(pageSize, itemCount-start)

	return Window{Start: start, End: end, TotalPages: totalPages}
}

// PageItem is one entry of the page-number strip: a page number or an ellipsis.
type PageItem struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func pageItem(n int) PageItem { return PageItem{Number: n} }

var ellipsis = PageItem{Ellipsis: true}

// PageNumbers builds the compressed page strip shown under the table.
//
//	total <= 7          1 2 3 4 5 6 7
//	current <= 3        1 2 3 4 5 … N
//	current >= N-2      1 … N-4 N-3 N-2 N-1 N
//	otherwise           1 … c-1 c c+1 … N
func PageNumbers(current, totalPages int) []PageItem {
	if totalPages <= 0 {
		return []PageItem{}
	}

	if totalPages <= maxPagesShown {
		items := make([]PageItem, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			items = append(items, pageItem(i))
		}
		return items
	}

	items := []PageItem{pageItem(1)}
	switch {
	case current <= 3:
		for i := 2; i <= 5; i++ {
			items = append(items, pageItem(i))
		}
		items = append(items, ellipsis, pageItem(totalPages))
	case current >= totalPages-2:
		items = append(items, ellipsis)
		for i := totalPages - 4; i <= totalPages; i++ {
			items = append(items, pageItem(i))
		}
	default:
		items = append(items, ellipsis)
		for i := current - 1; i <= current+1; i++ {
			items = append(items, pageItem(i))
		}
		items = append(items, ellipsis, pageItem(totalPages))
	}
	return items
}

// ItemRange returns the 1-based positions of the first and last item shown
// on the current page, or (0, 0) when there is nothing to show.
func ItemRange(current, pageSize, totalItems int) (first, last int) {
	if totalItems <= 0 || current < 1 || pageSize < 1 {
		return 0, 0
	}
	window := Paginate(totalItems, current, pageSize)
	if window.Start == window.End {
		return 0, 0
	}
	return window.Start + 1, window.End
}

// HasPrevious reports whether a page precedes current.
func HasPrevious(current int) bool {
	return current > 1
}

// HasNext reports whether a page follows current.
func HasNext(current, totalPages int) bool {
	return current < totalPages
}
