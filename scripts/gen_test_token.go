package main

import (
	"fmt"
	"log"
	"os"

	"codeberg.org/algopatterns/retrieval/internal/auth"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// load environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	// client identity from args, generated defaults otherwise
	clientID := uuid.New().String()
	clientName := "Test Client"
	if len(os.Args) > 1 {
		clientID = os.Args[1]
	}
	if len(os.Args) > 2 {
		clientName = os.Args[2]
	}

	// generate JWT token
	token, err := auth.GenerateJWT(clientID, clientName)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("✅ Client: %s (ID: %s)\n", clientName, clientID)
	fmt.Printf("\n🔑 Test JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
