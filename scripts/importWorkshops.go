package main

import (
	"encoding/csv"
	"log"
	"os"
	"shikhon/config"
	"shikhon/database"
	"shikhon/models"
	"strconv"
	"strings"
	"time"
)

// Imports workshops from workshops.csv. Rows are matched by slug:
// existing workshops are updated, new ones inserted.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("workshops.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for _, row := range records[1:] {
		workshop := models.Workshop{
			Title:           getField(row, headerIndex, "title"),
			Slug:            getField(row, headerIndex, "slug"),
			Description:     getField(row, headerIndex, "description"),
			Category:        models.WorkshopCategory(getField(row, headerIndex, "category")),
			PriceRegular:    parseFloat(getField(row, headerIndex, "priceRegular")),
			PriceOffer:      parseFloat(getField(row, headerIndex, "priceOffer")),
			PriceEarlybirds: parseFloat(getField(row, headerIndex, "priceEarlybirds")),
			EarlybirdsCount: parseInt(getField(row, headerIndex, "earlybirdsCount")),
			Capacity:        parseInt(getField(row, headerIndex, "capacity")),
			StartTime:       parseTime(getField(row, headerIndex, "startTime")),
			EndTime:         parseTime(getField(row, headerIndex, "endTime")),
			Status:          models.WorkshopStatus(getField(row, headerIndex, "status")),
		}

		if workshop.Slug == "" || workshop.Title == "" {
			skipped++
			continue
		}
		if workshop.Status == "" {
			workshop.Status = models.WorkshopStatusDraft
		}
		if workshop.Category == "" {
			workshop.Category = models.WorkshopCategoryOther
		}

		var existing models.Workshop
		result := database.Database.Db.Where("slug = ?", workshop.Slug).First(&existing)

		if result.Error != nil {
			if err := database.Database.Db.Create(&workshop).Error; err != nil {
				log.Printf("Error inserting workshop %s: %v", workshop.Slug, err)
				continue
			}
			inserted++
		} else {
			existing.Title = workshop.Title
			existing.Description = workshop.Description
			existing.Category = workshop.Category
			existing.PriceRegular = workshop.PriceRegular
			existing.PriceOffer = workshop.PriceOffer
			existing.PriceEarlybirds = workshop.PriceEarlybirds
			existing.EarlybirdsCount = workshop.EarlybirdsCount
			existing.Capacity = workshop.Capacity
			existing.StartTime = workshop.StartTime
			existing.EndTime = workshop.EndTime
			existing.Status = workshop.Status
			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating workshop %s: %v", workshop.Slug, err)
				continue
			}
			updated++
		}
	}

	log.Printf("Import finished: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
