package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rssarti/PDV-Delivery/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}

	if len(os.Args) > 1 && os.Args[1] == "down" {
		if err := database.RollbackMigration(migrationsPath); err != nil {
			log.Fatalf("Erro ao reverter migração: %v", err)
		}
		log.Println("Migração revertida com sucesso!")
		return
	}

	if err := database.RunMigrations(migrationsPath); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
