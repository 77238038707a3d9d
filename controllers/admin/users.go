package adminController

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"kursdunyasi/config"
	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
)

// GetAdminUsers lists all users for the back office
func GetAdminUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// UpdateUserRole switches a user between STUDENT and ADMIN
func UpdateUserRole(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	reqData := new(struct {
		Role string `json:"role"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Role != "STUDENT" && reqData.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role!", nil)
	}

	if err := database.Database.Db.Model(&models.User{}).
		Where("id = ? AND is_deleted = false", userID).
		Update("role", reqData.Role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated!", nil)
}

// DeleteUser soft-deletes a user account
func DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	if err := database.Database.Db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted!", nil)
}

// csvRow is one parsed line keyed by header name
type csvRow map[string]string

// parseUserCSV is a deliberately naive comma-split parser: no quoting, no
// escaping. Rows whose field count differs from the header are silently
// skipped; admins fix their export instead of the parser guessing.
func parseUserCSV(text string) []csvRow {
	lines := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []csvRow
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != len(headers) {
			continue
		}

		row := make(csvRow, len(headers))
		for i, header := range headers {
			row[header] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, row)
	}
	return rows
}

// UploadUsersFromCSV bulk-imports users from a 4-column CSV
// (email,name,password,role). Rows with an already-registered email are
// skipped without error. Unlike the defaults-only columns, email is
// mandatory per row.
func UploadUsersFromCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read file", nil)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read file", nil)
	}

	rows := parseUserCSV(string(content))

	db := database.Database.Db
	count := 0
	for _, row := range rows {
		email := row["email"]
		if email == "" {
			continue
		}

		// Existing emails are a no-op
		if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
			continue
		}

		name := row["name"]
		if name == "" {
			name = "Student"
		}
		password := row["password"]
		if password == "" {
			password = "123456"
		}
		role := row["role"]
		if role == "" {
			role = "STUDENT"
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password for %s: %v", email, err)
			continue
		}

		user := models.User{
			Email:    email,
			Name:     name,
			Password: string(hashedPassword),
			Role:     role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error importing user %s: %v", email, err)
			continue
		}
		count++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("Successfully added %d users.", count), fiber.Map{
		"imported": count,
	})
}
