package models

// PageCount computes ceil(total/limit), the single authoritative page
// count for every paged response. Callers must not derive it any other
// way. A non-positive limit yields zero pages.
func PageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
