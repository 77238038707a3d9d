package chatController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kursdunyasi/config"
	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
)

func setupChatTest(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	app.Get("/chat/messages", middleware.JWTMiddleware, GetMessages)
	app.Post("/chat/send", middleware.JWTMiddleware, SendMessage)
	app.Get("/chat/permissions", middleware.JWTMiddleware, GetChatPermissions)
	return app
}

func createChatUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Chat", Email: email, Password: "x", Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

// grantChatPackage gives the user a COMPLETED purchase of a package with the
// given chat flags.
func grantChatPackage(t *testing.T, userID uint, userChat, instructorChat bool) {
	t.Helper()

	pkg := models.Package{
		Name:                 "Sohbet Paketi",
		Price:                300,
		EnableUserChat:       userChat,
		EnableInstructorChat: instructorChat,
	}
	require.NoError(t, database.Database.Db.Create(&pkg).Error)
	require.NoError(t, database.Database.Db.Create(&models.Purchase{
		UserID:    userID,
		PackageID: &pkg.ID,
		Amount:    pkg.Price,
		Status:    models.PurchaseCompleted,
		OrderID:   "order-chat-" + strconv.Itoa(int(userID)),
	}).Error)
}

func sendMessage(t *testing.T, app *fiber.App, token, content, messageType string) (*http.Response, string) {
	t.Helper()

	payload, err := json.Marshal(fiber.Map{"content": content, "type": messageType})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat/send", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body.Message
}

func TestSendMessageWithoutPackage(t *testing.T) {
	app := setupChatTest(t)
	_, token := createChatUser(t, "pkgless@example.com", "STUDENT")

	resp, msg := sendMessage(t, app, token, "merhaba", models.MessageCommunity)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Bu sohbet kanalına erişiminiz yok (Paketinizi yükseltin)", msg)
}

func TestSendMessagePackageFlags(t *testing.T) {
	app := setupChatTest(t)
	user, token := createChatUser(t, "flagged@example.com", "STUDENT")
	grantChatPackage(t, user.ID, true, false)

	resp, _ := sendMessage(t, app, token, "topluluk mesajı", models.MessageCommunity)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, msg := sendMessage(t, app, token, "eğitmen mesajı", models.MessageInstructor)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Eğitmen sohbetine erişiminiz yok (Premium özellik)", msg)
}

func TestAdminAlwaysHasChatAccess(t *testing.T) {
	app := setupChatTest(t)
	_, token := createChatUser(t, "admin@example.com", "ADMIN")

	resp, _ := sendMessage(t, app, token, "duyuru", models.MessageInstructor)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSendMessageRejectsEmptyContent(t *testing.T) {
	app := setupChatTest(t)
	_, token := createChatUser(t, "empty@example.com", "ADMIN")

	resp, msg := sendMessage(t, app, token, "   ", models.MessageCommunity)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Empty message", msg)
}

func TestGetMessagesReturnsOldestFirst(t *testing.T) {
	app := setupChatTest(t)
	user, token := createChatUser(t, "reader@example.com", "ADMIN")

	for i := 1; i <= 3; i++ {
		require.NoError(t, database.Database.Db.Create(&models.Message{
			UserID:  user.ID,
			Content: "mesaj " + strconv.Itoa(i),
			Type:    models.MessageCommunity,
		}).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/chat/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Message `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "mesaj 1", body.Data[0].Content)
	assert.Equal(t, "mesaj 3", body.Data[2].Content)
}

func TestGetChatPermissions(t *testing.T) {
	app := setupChatTest(t)
	user, token := createChatUser(t, "perms@example.com", "STUDENT")
	grantChatPackage(t, user.ID, true, true)

	req := httptest.NewRequest(http.MethodGet, "/chat/permissions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data chatPermissions `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Data.CanUserChat)
	assert.True(t, body.Data.CanInstructorChat)
}
