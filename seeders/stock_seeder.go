package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type demoCategory struct {
	Name        string
	Description string
}

var demoCategories = []demoCategory{
	{Name: "Ordinateurs", Description: "Ordinateurs de bureau et portables"},
	{Name: "Périphériques", Description: "Souris, claviers, écrans"},
	{Name: "Réseau", Description: "Routeurs, switches, câbles"},
	{Name: "Téléphonie", Description: "Téléphones et équipements télécom"},
}

type demoEquipment struct {
	Name         string
	CategoryName string
	CurrentStock int
}

var demoEquipments = []demoEquipment{
	{Name: "Ordinateur portable Dell Latitude", CategoryName: "Ordinateurs", CurrentStock: 25},
	{Name: "Écran 24 pouces", CategoryName: "Périphériques", CurrentStock: 40},
	{Name: "Clavier sans fil", CategoryName: "Périphériques", CurrentStock: 60},
	{Name: "Switch 24 ports", CategoryName: "Réseau", CurrentStock: 8},
	{Name: "Téléphone IP", CategoryName: "Téléphonie", CurrentStock: 30},
}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	for _, c := range demoCategories {
		_, err := db.Exec(ctx,
			`INSERT INTO categories (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			c.Name, c.Description,
		)
		if err != nil {
			return fmt.Errorf("не удалось создать категорию %q: %w", c.Name, err)
		}
	}
	log.Println("    - Категории по умолчанию созданы.")
	return nil
}

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM equipments").Scan(&count); err != nil {
		return fmt.Errorf("не удалось проверить наличие оборудования: %w", err)
	}
	if count > 0 {
		log.Println("    - Оборудование уже есть. Пропускаем.")
		return nil
	}

	for _, e := range demoEquipments {
		var categoryID uint64
		err := db.QueryRow(ctx, "SELECT id FROM categories WHERE name = $1", e.CategoryName).Scan(&categoryID)
		if err != nil {
			return fmt.Errorf("не найдена категория %q: %w", e.CategoryName, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO equipments (name, category_id, current_stock) VALUES ($1, $2, $3)`,
			e.Name, categoryID, e.CurrentStock,
		)
		if err != nil {
			return fmt.Errorf("не удалось создать оборудование %q: %w", e.Name, err)
		}
	}
	log.Println("    - Стартовое оборудование создано.")
	return nil
}
