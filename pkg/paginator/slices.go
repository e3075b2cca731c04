package paginator

// PaginateSlice returns the items of slice that fall on the requested page.
// A page past the end yields an empty slice with the pagination info filled in.
func PaginateSlice[T any](slice []T, query PaginateQuery) ([]T, Paginator) {
	query.Adjust()

	total := int64(len(slice))
	pag := Paginator{
		Total:       total,
		PerPage:     query.Limit,
		CurrentPage: query.Page,
	}

	start := query.Offset()
	if start >= total {
		return []T{}, pag
	}

	end := start + query.Limit
	if end > total {
		end = total
	}

	items := slice[start:end]
	pag.Count = int64(len(items))
	return items, pag
}
