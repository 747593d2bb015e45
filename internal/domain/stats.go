package domain

type RequestStats struct {
	ByState     map[string]int64 `json:"by_state"`
	Total       int64            `json:"total"`
	NonPositive int64            `json:"non_positive"`
}
