// delete_lead lists registered leads and interactively removes one, either
// by id or by email. Offline maintenance tool for a single operator.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tyltyhub/internal/config"
	"tyltyhub/internal/database"
	"tyltyhub/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Printf("db connect failed: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("db close error: %v", err)
		}
	}()

	leadRepo := repository.NewLeadRepository(db)
	ctx := context.Background()

	leads, err := leadRepo.List(ctx)
	if err != nil {
		log.Fatalf("listing leads failed: %v", err)
	}

	if len(leads) == 0 {
		fmt.Println("Nenhum lead encontrado no banco de dados.")
		return
	}

	fmt.Println("Leads cadastrados:")
	fmt.Println()
	for _, l := range leads {
		fmt.Printf("ID: %d | Nome: %s | Email: %s | Data: %s\n",
			l.ID, l.NomeCompleto, l.Email, l.DataCadastro.Format("2006-01-02 15:04:05"))
	}

	fmt.Println()
	fmt.Println("Opções:")
	fmt.Println("1. Apagar por ID")
	fmt.Println("2. Apagar por email")
	fmt.Println("3. Sair")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	switch prompt(reader, "Escolha uma opção (1-3): ") {
	case "1":
		raw := prompt(reader, "Digite o ID do lead para apagar: ")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Println("ID inválido!")
			return
		}
		changed, err := leadRepo.DeleteByID(ctx, id)
		if err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		if changed > 0 {
			fmt.Printf("Lead com ID %d apagado com sucesso!\n", id)
		} else {
			fmt.Printf("Lead com ID %d não encontrado.\n", id)
		}

	case "2":
		email := prompt(reader, "Digite o email do lead para apagar: ")
		changed, err := leadRepo.DeleteByEmail(ctx, email)
		if err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		if changed > 0 {
			fmt.Printf("Lead com email %s apagado com sucesso!\n", email)
		} else {
			fmt.Printf("Lead com email %s não encontrado.\n", email)
		}

	case "3":
		fmt.Println("Saindo...")

	default:
		fmt.Println("Opção inválida!")
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
