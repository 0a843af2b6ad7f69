package dto

type CategoryStatDTO struct {
	Name          string `json:"name"`
	TotalStock    int    `json:"total_stock"`
	CriticalItems int    `json:"critical_items"`
}

type DashboardStatsDTO struct {
	TotalEquipment  int               `json:"total_equipment"`
	CriticalStock   int               `json:"critical_stock"`
	TotalEmployees  int               `json:"total_employees"`
	TotalStockValue int               `json:"total_stock_value"`
	CategoryStats   []CategoryStatDTO `json:"category_stats"`
}
