package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoUsers создает демонстрационных пользователей (админа и обычного).
func SeedDemoUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск создания демонстрационных пользователей...")

	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания пользователей: %v", err)
	}
	log.Println("✅ Демонстрационные пользователи созданы!")
}

// SeedStock наполняет справочники склада: категории и стартовое оборудование.
func SeedStock(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения склада...")

	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Категорий (Categories): %v", err)
	}
	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Оборудования (Equipments): %v", err)
	}
	log.Println("✅ Наполнение склада завершено!")
}
