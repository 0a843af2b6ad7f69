package main

import (
	"database/sql"
	"flag"
	"log"

	"helpdesk-system/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	dir := flag.String("dir", "migrations", "каталог с миграциями")
	down := flag.Bool("down", false, "откатить последнюю миграцию вместо применения")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ Не удалось открыть соединение с БД: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("❌ Не удалось выбрать диалект: %v", err)
	}

	if *down {
		if err := goose.Down(db, *dir); err != nil {
			log.Fatalf("❌ Откат миграции не удался: %v", err)
		}
		log.Println("✅ Миграция откатана")
		return
	}

	if err := goose.Up(db, *dir); err != nil {
		log.Fatalf("❌ Применение миграций не удалось: %v", err)
	}
	log.Println("✅ Миграции применены")
}
