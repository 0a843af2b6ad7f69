package repositories

import (
	"context"
	"testing"

	"helpdesk-system/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats_CriticalCountFollowsAssignments(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAssignFixture(t, pool, 12) // critical_level = 10, сток выше порога
	employeeRepo := NewEmployeeRepository(pool, NewTxManager(pool))
	dashboardRepo := NewDashboardRepository(pool)
	ctx := context.Background()

	stats, err := dashboardRepo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEquipment)
	assert.Equal(t, 0, stats.CriticalStock)
	assert.Equal(t, 1, stats.TotalEmployees)
	assert.Equal(t, 12, stats.TotalStockValue)
	require.Len(t, stats.CategoryStats, 1)
	assert.Equal(t, "Périphériques", stats.CategoryStats[0].Name)
	assert.Equal(t, 12, stats.CategoryStats[0].TotalStock)
	assert.Equal(t, 0, stats.CategoryStats[0].CriticalItems)

	// Выдача опускает сток до 9 <= critical_level: позиция становится критичной.
	err = employeeRepo.AssignEquipment(ctx, dto.AssignEquipmentDTO{
		EmployeeID:  f.employeeID,
		EquipmentID: f.equipmentID,
		Quantity:    3,
	}, f.adminID)
	require.NoError(t, err)

	stats, err = dashboardRepo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CriticalStock)
	assert.Equal(t, 9, stats.TotalStockValue)
	assert.Equal(t, 1, stats.CategoryStats[0].CriticalItems)
}

func TestGetStats_IgnoresInactiveEquipment(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAssignFixture(t, pool, 5)
	dashboardRepo := NewDashboardRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `UPDATE equipments SET is_active = FALSE WHERE id = $1`, f.equipmentID)
	require.NoError(t, err)

	stats, err := dashboardRepo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEquipment)
	assert.Equal(t, 0, stats.CriticalStock)
	assert.Equal(t, 0, stats.TotalStockValue)
	assert.Empty(t, stats.CategoryStats)
}
