package services

import (
	"context"
	"fmt"

	"helpdesk-system/internal/entities"
	"helpdesk-system/internal/repositories"

	"github.com/xuri/excelize/v2"
)

const assignmentSheetName = "Historique"

type ReportServiceInterface interface {
	BuildAssignmentHistoryWorkbook(ctx context.Context) (*excelize.File, error)
}

// ReportService выгружает журнал выдач в xlsx для админов.
type ReportService struct {
	assignmentRepo repositories.AssignmentRepositoryInterface
}

func NewReportService(assignmentRepo repositories.AssignmentRepositoryInterface) ReportServiceInterface {
	return &ReportService{assignmentRepo: assignmentRepo}
}

func (s *ReportService) BuildAssignmentHistoryWorkbook(ctx context.Context) (*excelize.File, error) {
	assignments, err := s.assignmentRepo.GetAssignmentHistory(ctx)
	if err != nil {
		return nil, err
	}
	return buildAssignmentWorkbook(assignments)
}

func buildAssignmentWorkbook(assignments []entities.Assignment) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), assignmentSheetName)

	headers := []string{"ID", "Employé", "Département", "Équipement", "Quantité", "Type", "Par", "Date"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(assignmentSheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, a := range assignments {
		values := []interface{}{
			a.ID,
			a.EmployeeName,
			a.EmployeeDepartment,
			a.EquipmentName,
			a.Quantity,
			a.Type,
			a.AssignedByUsername,
			a.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(assignmentSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(assignmentSheetName, "A", "H", 20); err != nil {
		return nil, err
	}

	return f, nil
}

// ExportFileName - имя вложения для Content-Disposition.
func ExportFileName(date string) string {
	return fmt.Sprintf("historique-attributions-%s.xlsx", date)
}
