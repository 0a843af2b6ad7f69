package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type demoUser struct {
	Username   string
	Email      string
	Password   string
	Role       string
	Department string
}

var demoUsers = []demoUser{
	{Username: "Admin", Email: "admin@example.com", Password: "admin123", Role: "admin", Department: "IT"},
	{Username: "Utilisateur", Email: "user@example.com", Password: "user123", Role: "user", Department: "Support"},
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	for _, u := range demoUsers {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", u.Email).Scan(&existingID)
		if err == nil {
			log.Printf("    - Пользователь %s уже существует. Пропускаем.", u.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), 12)
		if err != nil {
			return fmt.Errorf("не удалось захешировать пароль для %s: %w", u.Email, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO users (username, email, password_hash, role, department) VALUES ($1, $2, $3, $4, $5)`,
			u.Username, u.Email, string(hash), u.Role, u.Department,
		)
		if err != nil {
			return fmt.Errorf("не удалось создать пользователя %s: %w", u.Email, err)
		}
		log.Printf("    - Пользователь %s (%s) создан.", u.Username, u.Role)
	}
	return nil
}
