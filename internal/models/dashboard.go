package models

type ProductStats struct {
	Total   int64 `json:"total"`
	InStock int64 `json:"inStock"`
}

type OrderStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
}

type RevenueStats struct {
	Total float64 `json:"total"`
}

type DashboardStats struct {
	Products ProductStats `json:"products"`
	Orders   OrderStats   `json:"orders"`
	Revenue  RevenueStats `json:"revenue"`
}
