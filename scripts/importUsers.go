package main

import (
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"kursdunyasi/config"
	"kursdunyasi/database"
	"kursdunyasi/models"
)

// Standalone bulk user importer. Reads the same 4-column CSV the admin
// upload endpoint accepts (email,name,password,role) and applies identical
// rules: naive comma split, rows with a mismatched field count are skipped,
// already-registered emails are a no-op.
//
// Usage: go run scripts/importUsers.go users.csv
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "users.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}

	lines := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	log.Printf("CSV Headers: %v", headers)
	log.Printf("Total rows to import: %d", len(lines)-1)

	headerIndex := make(map[string]int)
	for i, h := range headers {
		headerIndex[h] = i
	}

	inserted := 0
	skipped := 0

	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != len(headers) {
			skipped++
			continue
		}

		email := getField(fields, headerIndex, "email")
		if email == "" {
			skipped++
			continue
		}

		if err := database.Database.Db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
			skipped++
			continue
		}

		name := getField(fields, headerIndex, "name")
		if name == "" {
			name = "Student"
		}
		password := getField(fields, headerIndex, "password")
		if password == "" {
			password = "123456"
		}
		role := getField(fields, headerIndex, "role")
		if role == "" {
			role = "STUDENT"
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password for %s: %v", email, err)
			skipped++
			continue
		}

		user := models.User{
			Email:    email,
			Name:     name,
			Password: string(hashedPassword),
			Role:     role,
		}
		if err := database.Database.Db.Create(&user).Error; err != nil {
			log.Printf("Error importing user %s: %v", email, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Skipped: %d", skipped)
}

// getField safely gets a field from the row by header name
func getField(fields []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(fields) {
		return strings.TrimSpace(fields[idx])
	}
	return ""
}
