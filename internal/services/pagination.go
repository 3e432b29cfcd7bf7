package services

// TotalPages calcula o total de páginas (ceil(total/limit))
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
