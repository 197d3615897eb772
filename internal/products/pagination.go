package products

// Window computes the range of page buttons to display: a window of width
// min(maxButtons, totalPages) centered on currentPage, slid to stay within
// [1, totalPages] near either edge.
func Window(currentPage, totalPages, maxButtons int) (startPage, endPage int) {
	if maxButtons <= 0 {
		maxButtons = 5
	}

	startPage = currentPage - maxButtons/2
	if startPage < 1 {
		startPage = 1
	}
	endPage = startPage + maxButtons - 1
	if endPage > totalPages {
		endPage = totalPages
	}

	// Slide the window back when close to the last page.
	if endPage-startPage+1 < maxButtons {
		startPage = endPage - maxButtons + 1
		if startPage < 1 {
			startPage = 1
		}
	}
	return startPage, endPage
}

// PageNumbers expands the window into the button labels to render. The view
// renders no controls at all when totalPages <= 1.
func PageNumbers(currentPage, totalPages, maxButtons int) []int {
	if totalPages <= 1 {
		return nil
	}
	start, end := Window(currentPage, totalPages, maxButtons)
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
