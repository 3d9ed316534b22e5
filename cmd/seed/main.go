package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// main generates the env-configured admin credentials
// Usage: go run cmd/seed/main.go
// The API has a single operator account read from ADMIN_EMAIL and
// ADMIN_PASSWORD_HASH; this tool produces both lines for the .env file.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("Congress Directory - Admin Credential Generator")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	email, password := getAdminCredentials()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Admin Credentials Generated!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("Add these lines to your .env file:")
	fmt.Println()
	fmt.Printf("ADMIN_EMAIL=%s\n", email)
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", string(hash))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with email and password")
	fmt.Println("3. Use the returned token for authenticated admin requests")
	fmt.Println()
}

// getAdminCredentials prompts for the operator email and password
func getAdminCredentials() (email, password string) {
	fmt.Println("Enter Admin Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if len(password) < 8 {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password
}
