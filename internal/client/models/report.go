package models

// DashboardSummary carries the Manager KPIs. The untouched-data and call
// fields are only filled by the report endpoints that need them.
type DashboardSummary struct {
	TotalSales             float64 `json:"totalSales"`
	LastMonthSales         float64 `json:"lastMonthSales"`
	ThisMonthSales         float64 `json:"thisMonthSales"`
	TodaySales             float64 `json:"todaySales"`
	TotalTransferData      int     `json:"totalTransferData"`
	TotalEmployees         int     `json:"totalEmployees"`
	TotalTLs               int     `json:"totalTLs"`
	TotalProspectOverall   int     `json:"totalProspectOverall"`
	TodayProspect          int     `json:"todayProspect"`
	MonthlyIncome          float64 `json:"monthlyIncome"`
	LastMonthIncome        float64 `json:"lastMonthIncome"`
	TotalIncome            float64 `json:"totalIncome"`
	TotalImportData        int     `json:"totalImportData"`
	TotalDataFinance       int     `json:"totalDataFinance"`
	LastMonthIncomeFinance float64 `json:"lastMonthIncomeFinance"`
	TotalIncomeFinance     float64 `json:"totalIncomeFinance"`
	TotalImportDataFinance int     `json:"totalImportDataFinance"`
	TotalClientsSpoken     int     `json:"totalClientsSpoken"`
	TotalCalls             int     `json:"totalCalls"`
	LastMonthProspect      int     `json:"lastMonthProspect"`
	TotalUntouchedData     int     `json:"totalUntouchedData"`
}

type PerformanceRow struct {
	Name            string  `json:"name"`
	Role            Role    `json:"role"`
	TotalCalls      int     `json:"totalCalls"`
	TotalProspects  int     `json:"totalProspects"`
	UntouchedData   int     `json:"untouchedData"`
	MonthlySales    float64 `json:"monthlySales"`
	TotalSalesCount int     `json:"totalSalesCount"`
}
