package models

// DashboardStats is the GET /dashboard/stats payload.
type DashboardStats struct {
	Overview     Overview       `json:"overview"`
	MonthlySales []MonthlySale  `json:"monthly_sales"`
	TopProducts  []ProductSales `json:"top_products"`
}

// Overview summarizes the previous calendar month.
type Overview struct {
	TotalSales    float64 `json:"total_sales"`
	NumInvoices   int     `json:"num_invoices"`
	AvgOrderValue float64 `json:"avg_order_value"`
	Period        string  `json:"period"`
}

type MonthlySale struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

type ProductSales struct {
	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
}
