// seeduser crea (o reemplaza) el usuario administrador del panel.
//
// Uso: go run ./cmd/seeduser -email admin@empresa.com -name Admin -password secreto
// Lee la conexión a PostgreSQL de las mismas variables de entorno que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/infrastructure/postgres"
	"github.com/tu-usuario/gestion-pyme/pkg/config"
)

func main() {
	email := flag.String("email", "", "email del usuario")
	name := flag.String("name", "Administrador", "nombre del usuario")
	password := flag.String("password", "", "contraseña en texto plano (se guarda con bcrypt)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Uso: seeduser -email <email> -password <contraseña> [-name <nombre>]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		Name:         *name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario %s creado (id %s)\n", user.Email, user.ID)
}
