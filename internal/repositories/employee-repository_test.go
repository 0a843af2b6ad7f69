package repositories

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"helpdesk-system/internal/dto"
	apperrors "helpdesk-system/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestPool подключается к тестовой БД и накатывает схему с нуля.
// Без TEST_DATABASE_URL интеграционные тесты пропускаются.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан, пропускаем интеграционный тест")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applySchema(t, pool)
	return pool
}

func applySchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	path, err := filepath.Abs("../../migrations/00001_init.sql")
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	parts := strings.SplitN(string(raw), "-- +goose Down", 2)
	require.Len(t, parts, 2)
	up, down := parts[0], parts[1]

	ctx := context.Background()
	// Сносим возможные остатки предыдущего прогона, ошибки игнорируем.
	for _, stmt := range strings.Split(down, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, _ = pool.Exec(ctx, stmt+" CASCADE")
	}

	_, err = pool.Exec(ctx, up)
	require.NoError(t, err)
}

type assignFixture struct {
	adminID     uint64
	employeeID  uint64
	categoryID  uint64
	equipmentID uint64
}

func seedAssignFixture(t *testing.T, pool *pgxpool.Pool, stock int) assignFixture {
	t.Helper()
	ctx := context.Background()
	var f assignFixture

	err := pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, role, department)
		VALUES ('Admin', 'admin@test.local', 'hash', 'admin', 'IT')
		RETURNING id`).Scan(&f.adminID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx, `
		INSERT INTO employees (name, department)
		VALUES ('Jean Dupont', 'Comptabilité')
		RETURNING id`).Scan(&f.employeeID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx, `
		INSERT INTO categories (name, description)
		VALUES ('Périphériques', 'Souris, claviers, écrans')
		RETURNING id`).Scan(&f.categoryID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx, `
		INSERT INTO equipments (name, category_id, current_stock, critical_level)
		VALUES ('Écran 24 pouces', $1, $2, 10)
		RETURNING id`, f.categoryID, stock).Scan(&f.equipmentID)
	require.NoError(t, err)

	return f
}

func currentStock(t *testing.T, pool *pgxpool.Pool, equipmentID uint64) int {
	t.Helper()
	var stock int
	err := pool.QueryRow(context.Background(),
		`SELECT current_stock FROM equipments WHERE id = $1`, equipmentID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func TestAssignEquipment_DecrementsStockAndWritesLedger(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAssignFixture(t, pool, 5)
	repo := NewEmployeeRepository(pool, NewTxManager(pool))
	ctx := context.Background()

	err := repo.AssignEquipment(ctx, dto.AssignEquipmentDTO{
		EmployeeID:  f.employeeID,
		EquipmentID: f.equipmentID,
		Quantity:    3,
	}, f.adminID)
	require.NoError(t, err)

	assert.Equal(t, 2, currentStock(t, pool, f.equipmentID))

	var quantity int
	err = pool.QueryRow(ctx, `
		SELECT quantity FROM employee_equipment
		WHERE employee_id = $1 AND equipment_id = $2`,
		f.employeeID, f.equipmentID).Scan(&quantity)
	require.NoError(t, err)
	assert.Equal(t, 3, quantity)

	var ledgerCount int
	err = pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM assignments
		WHERE employee_id = $1 AND equipment_id = $2 AND assigned_by = $3`,
		f.employeeID, f.equipmentID, f.adminID).Scan(&ledgerCount)
	require.NoError(t, err)
	assert.Equal(t, 1, ledgerCount)
}

func TestAssignEquipment_InsufficientStockLeavesStateUntouched(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAssignFixture(t, pool, 2)
	repo := NewEmployeeRepository(pool, NewTxManager(pool))
	ctx := context.Background()

	err := repo.AssignEquipment(ctx, dto.AssignEquipmentDTO{
		EmployeeID:  f.employeeID,
		EquipmentID: f.equipmentID,
		Quantity:    3,
	}, f.adminID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)

	assert.Equal(t, 2, currentStock(t, pool, f.equipmentID))

	var ledgerCount int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM assignments`).Scan(&ledgerCount)
	require.NoError(t, err)
	assert.Equal(t, 0, ledgerCount)
}

func TestAssignEquipment_RepeatAccumulatesQuantity(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAssignFixture(t, pool, 10)
	repo := NewEmployeeRepository(pool, NewTxManager(pool))
	ctx := context.Background()

	payload := dto.AssignEquipmentDTO{
		EmployeeID:  f.employeeID,
		EquipmentID: f.equipmentID,
		Quantity:    2,
	}
	require.NoError(t, repo.AssignEquipment(ctx, payload, f.adminID))
	require.NoError(t, repo.AssignEquipment(ctx, payload, f.adminID))

	var quantity int
	err := pool.QueryRow(ctx, `
		SELECT quantity FROM employee_equipment
		WHERE employee_id = $1 AND equipment_id = $2`,
		f.employeeID, f.equipmentID).Scan(&quantity)
	require.NoError(t, err)
	assert.Equal(t, 4, quantity)

	var rowCount int
	err = pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM employee_equipment
		WHERE employee_id = $1`, f.employeeID).Scan(&rowCount)
	require.NoError(t, err)
	assert.Equal(t, 1, rowCount, "повторная выдача не должна плодить позиции")

	assert.Equal(t, 6, currentStock(t, pool, f.equipmentID))
}

func TestAssignEquipment_InactiveEmployee(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAssignFixture(t, pool, 5)
	repo := NewEmployeeRepository(pool, NewTxManager(pool))
	ctx := context.Background()

	_, err := pool.Exec(ctx, `UPDATE employees SET is_active = FALSE WHERE id = $1`, f.employeeID)
	require.NoError(t, err)

	err = repo.AssignEquipment(ctx, dto.AssignEquipmentDTO{
		EmployeeID:  f.employeeID,
		EquipmentID: f.equipmentID,
		Quantity:    1,
	}, f.adminID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.Equal(t, 5, currentStock(t, pool, f.equipmentID))
}

func TestAssignEquipment_UnknownEquipment(t *testing.T) {
	pool := setupTestPool(t)
	f := seedAssignFixture(t, pool, 5)
	repo := NewEmployeeRepository(pool, NewTxManager(pool))

	err := repo.AssignEquipment(context.Background(), dto.AssignEquipmentDTO{
		EmployeeID:  f.employeeID,
		EquipmentID: f.equipmentID + 1000,
		Quantity:    1,
	}, f.adminID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
