package main

import (
	"log"

	"github.com/GestaoGas/api-abastecimento/internal/combustivel"
	"github.com/GestaoGas/api-abastecimento/internal/utils/db"
	"github.com/joho/godotenv"
)

// Popula o catálogo de combustíveis. Pode ser executado quantas vezes
// for preciso: registros existentes são atualizados pela sigla.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := conn.AutoMigrate(&combustivel.Combustivel{}); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	repo := combustivel.NewRepository()
	falhas := 0
	for _, c := range combustivel.Catalogo {
		item := c
		if err := repo.UpsertPorSigla(conn, &item); err != nil {
			log.Printf("falha ao semear %s (%s): %v", item.Nome, item.Sigla, err)
			falhas++
			continue
		}
		log.Printf("combustível %s (%s) semeado", item.Nome, item.Sigla)
	}
	if falhas > 0 {
		log.Printf("seed concluído com %d falha(s)", falhas)
		return
	}
	log.Println("seed concluído")
}
