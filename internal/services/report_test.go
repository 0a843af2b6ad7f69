package services

import (
	"context"
	"testing"
	"time"

	"helpdesk-system/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssignmentRepo struct {
	assignments []entities.Assignment
}

func (s *stubAssignmentRepo) GetAssignmentHistory(ctx context.Context) ([]entities.Assignment, error) {
	return s.assignments, nil
}

func TestBuildAssignmentHistoryWorkbook(t *testing.T) {
	createdAt := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	repo := &stubAssignmentRepo{assignments: []entities.Assignment{
		{
			ID:                 1,
			EmployeeName:       "Jean Dupont",
			EmployeeDepartment: "Comptabilité",
			EquipmentName:      "Écran 24 pouces",
			Quantity:           2,
			Type:               entities.AssignmentTypeAssignment,
			AssignedByUsername: "Admin",
			CreatedAt:          createdAt,
		},
	}}

	svc := NewReportService(repo)
	file, err := svc.BuildAssignmentHistoryWorkbook(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Historique", file.GetSheetName(0))

	header, err := file.GetCellValue("Historique", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Employé", header)

	name, err := file.GetCellValue("Historique", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", name)

	quantity, err := file.GetCellValue("Historique", "E2")
	require.NoError(t, err)
	assert.Equal(t, "2", quantity)

	date, err := file.GetCellValue("Historique", "H2")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-20 14:30:00", date)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "historique-attributions-2026-08-20.xlsx", ExportFileName("2026-08-20"))
}
