package repositories

import (
	"context"

	"helpdesk-system/internal/dto"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepositoryInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

// GetStats собирает сводку склада. "Критичность" - производное условие
// current_stock <= critical_level, в таблице она не хранится.
func (r *DashboardRepository) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats := &dto.DashboardStatsDTO{
		CategoryStats: make([]dto.CategoryStatDTO, 0),
	}

	err := r.storage.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE current_stock <= critical_level),
			COALESCE(SUM(current_stock), 0)
		FROM equipments
		WHERE is_active = TRUE`,
	).Scan(&stats.TotalEquipment, &stats.CriticalStock, &stats.TotalStockValue)
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx, `
		SELECT COUNT(*) FROM employees WHERE is_active = TRUE`,
	).Scan(&stats.TotalEmployees)
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, `
		SELECT
			c.name,
			COALESCE(SUM(e.current_stock), 0),
			COUNT(*) FILTER (WHERE e.current_stock <= e.critical_level)
		FROM equipments e
		JOIN categories c ON c.id = e.category_id
		WHERE e.is_active = TRUE
		GROUP BY c.name
		ORDER BY c.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cs dto.CategoryStatDTO
		if err := rows.Scan(&cs.Name, &cs.TotalStock, &cs.CriticalItems); err != nil {
			return nil, err
		}
		stats.CategoryStats = append(stats.CategoryStats, cs)
	}
	return stats, rows.Err()
}
