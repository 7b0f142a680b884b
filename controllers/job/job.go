package jobController

import (
	"errors"
	"log"
	"shikhon/database"
	"shikhon/middleware"
	"shikhon/models"
	"shikhon/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllJobs lists open job postings
func GetAllJobs(c *fiber.Ctx) error {
	var jobs []models.Job
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = ?", "open", false).
		Order("deadline asc").
		Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch jobs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", jobs)
}

// GetJobDetails returns one open job posting
func GetJobDetails(c *fiber.Ctx) error {
	jobID := c.Locals("jobID").(int)

	var job models.Job
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND status = ?", jobID, false, "open").
		First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job fetched successfully!", job)
}

// ApplyForJob records one application per (job, email). A second
// submission with the same email gets a duplicate-specific message, not
// a generic database error.
func ApplyForJob(c *fiber.Ctx) error {
	jobID := c.Locals("jobID").(int)
	reqData, ok := c.Locals("validatedApplication").(*models.Application)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var job models.Job
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", jobID, false, "open").First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found or no longer open!", nil)
	}

	if job.Deadline.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The application deadline has passed!", nil)
	}

	// Optional resume upload rides along in the multipart form
	if file, err := c.FormFile("resume"); err == nil {
		path, err := utils.SaveUploadedFile(file, "./public/resumes")
		if err != nil {
			log.Printf("Error saving resume upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store resume!", nil)
		}
		reqData.ResumePath = path
	}

	reqData.JobID = uint(jobID)

	if err := db.Create(reqData).Error; err != nil {
		if isDuplicateError(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already applied for this job with this email!", nil)
		}
		log.Printf("Error saving application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	utils.SendJobApplicationEmail(reqData.Email, reqData.Name, job.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", fiber.Map{
		"applicationId": reqData.ID,
		"resumeUrl":     utils.GetFileURL(reqData.ResumePath),
	})
}

// isDuplicateError reports whether the insert hit the (job, email)
// unique constraint.
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

// GetJobApplications lists applications for one job (admin only)
func GetJobApplications(c *fiber.Ctx) error {
	jobID := c.Locals("jobID").(int)

	var applications []models.Application
	if err := database.Database.Db.
		Where("job_id = ? AND is_deleted = ?", jobID, false).
		Order("created_at desc").
		Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}
