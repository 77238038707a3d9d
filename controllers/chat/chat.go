package chatController

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
	"kursdunyasi/utils"
)

// Chat access rides on the active package's feature flags. The client polls
// GetMessages on a fixed interval; there is no push channel.

type chatPermissions struct {
	CanUserChat       bool `json:"canUserChat"`
	CanInstructorChat bool `json:"canInstructorChat"`
}

func resolveChatPermissions(userID uint) chatPermissions {
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return chatPermissions{}
	}

	// Admin always has access
	if user.Role == "ADMIN" {
		return chatPermissions{CanUserChat: true, CanInstructorChat: true}
	}

	activePurchase, err := utils.ActivePackagePurchase(userID)
	if err != nil || activePurchase.Package == nil {
		return chatPermissions{}
	}

	return chatPermissions{
		CanUserChat:       activePurchase.Package.EnableUserChat,
		CanInstructorChat: activePurchase.Package.EnableInstructorChat,
	}
}

// GetMessages returns the latest 50 messages of a channel, oldest first
func GetMessages(c *fiber.Ctx) error {
	messageType := c.Query("type", models.MessageCommunity)
	if messageType != models.MessageCommunity && messageType != models.MessageInstructor {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid message type!", nil)
	}

	var messages []models.Message
	if err := database.Database.Db.
		Where("type = ? AND is_deleted = false", messageType).
		Preload("User").
		Order("created_at desc").
		Limit(50).
		Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	// Reverse so the client renders oldest to newest
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	for i := range messages {
		messages[i].User.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", messages)
}

// SendMessage posts to a channel the user's package unlocks
func SendMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Content string `json:"content"`
		Type    string `json:"type"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Content) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Empty message", nil)
	}
	if reqData.Type == "" {
		reqData.Type = models.MessageCommunity
	}
	if reqData.Type != models.MessageCommunity && reqData.Type != models.MessageInstructor {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid message type!", nil)
	}

	perms := resolveChatPermissions(userID)
	if reqData.Type == models.MessageCommunity && !perms.CanUserChat {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Bu sohbet kanalına erişiminiz yok (Paketinizi yükseltin)", nil)
	}
	if reqData.Type == models.MessageInstructor && !perms.CanInstructorChat {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Eğitmen sohbetine erişiminiz yok (Premium özellik)", nil)
	}

	message := models.Message{
		UserID:  userID,
		Content: reqData.Content,
		Type:    reqData.Type,
	}
	if err := database.Database.Db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	database.Database.Db.Preload("User").First(&message, message.ID)
	message.User.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent!", message)
}

// GetChatPermissions exposes the flags so the client can hide locked channels
func GetChatPermissions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Permissions fetched successfully!", resolveChatPermissions(userID))
}
