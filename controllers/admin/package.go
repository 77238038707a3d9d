package adminController

import (
	"github.com/gofiber/fiber/v2"

	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
)

// GetAdminPackages lists packages with their purchase counts
func GetAdminPackages(c *fiber.Ctx) error {
	var packages []models.Package
	if err := database.Database.Db.
		Where("is_deleted = false").
		Preload("Courses").
		Order("price asc").
		Find(&packages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch packages!", nil)
	}

	type PackageWithCount struct {
		models.Package
		PurchaseCount int64 `json:"purchase_count"`
	}

	response := make([]PackageWithCount, 0, len(packages))
	for _, pkg := range packages {
		var count int64
		database.Database.Db.Model(&models.Purchase{}).
			Where("package_id = ? AND status = ?", pkg.ID, models.PurchaseCompleted).
			Count(&count)
		response = append(response, PackageWithCount{Package: pkg, PurchaseCount: count})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Packages fetched successfully!", response)
}

func CreatePackage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPackage").(*struct {
		Name                 string  `json:"name" validate:"required"`
		Description          string  `json:"description"`
		Price                float64 `json:"price" validate:"gte=0"`
		Features             string  `json:"features"`
		CourseLimit          *int    `json:"course_limit" validate:"omitempty,gte=0"`
		EnableUserChat       bool    `json:"enable_user_chat"`
		EnableInstructorChat bool    `json:"enable_instructor_chat"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	pkg := models.Package{
		Name:                 reqData.Name,
		Description:          reqData.Description,
		Price:                reqData.Price,
		Features:             reqData.Features,
		CourseLimit:          reqData.CourseLimit,
		EnableUserChat:       reqData.EnableUserChat,
		EnableInstructorChat: reqData.EnableInstructorChat,
	}
	if err := database.Database.Db.Create(&pkg).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Package created!", pkg)
}

func UpdatePackage(c *fiber.Ctx) error {
	packageID := c.Locals("packageID").(int)

	reqData, ok := c.Locals("validatedPackage").(*struct {
		Name                 string  `json:"name" validate:"required"`
		Description          string  `json:"description"`
		Price                float64 `json:"price" validate:"gte=0"`
		Features             string  `json:"features"`
		CourseLimit          *int    `json:"course_limit" validate:"omitempty,gte=0"`
		EnableUserChat       bool    `json:"enable_user_chat"`
		EnableInstructorChat bool    `json:"enable_instructor_chat"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var pkg models.Package
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", packageID).First(&pkg).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
	}

	pkg.Name = reqData.Name
	pkg.Description = reqData.Description
	pkg.Price = reqData.Price
	pkg.Features = reqData.Features
	pkg.CourseLimit = reqData.CourseLimit
	pkg.EnableUserChat = reqData.EnableUserChat
	pkg.EnableInstructorChat = reqData.EnableInstructorChat

	if err := database.Database.Db.Save(&pkg).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package updated!", pkg)
}

func DeletePackage(c *fiber.Ctx) error {
	packageID := c.Locals("packageID").(int)

	if err := database.Database.Db.Model(&models.Package{}).
		Where("id = ?", packageID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package deleted!", nil)
}
