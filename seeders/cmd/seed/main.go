package main

import (
	"flag"
	"log"

	"helpdesk-system/pkg/config"
	"helpdesk-system/pkg/database/postgresql"
	"helpdesk-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runUsers := flag.Bool("users", false, "Создать демонстрационных пользователей")
	runStock := flag.Bool("stock", false, "Наполнить справочники склада")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -users -stock)")

	flag.Parse()

	if !*runUsers && !*runStock && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runUsers {
		seeders.SeedDemoUsers(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runStock {
		seeders.SeedStock(dbPool)
		log.Println("======================================================")
	}

	log.Println("🎉 Сидирование завершено.")
}
