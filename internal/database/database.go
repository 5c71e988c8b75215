package database

import (
	"log"

	"purpoise-api/internal/engine"
	"purpoise-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection and runs migrations
func InitDB(path string) {
	var err error

	// Pure Go SQLite driver (no CGO required)
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate the schema (it will create tables if they don't exist)
	err = DB.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.Stage{},
		&models.Task{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := BackfillLegacyRecurrence(DB); err != nil {
		log.Println("legacy recurrence backfill:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// BackfillLegacyRecurrence populates explicit recurrence fields on rows
// imported from the legacy schema, where recurrence lived in display text:
// goals titled "…Recurring Tasks…" become the recurring home, and their
// tasks get recurrence derived from stage name + task text. Rows that
// already carry explicit fields are left alone, so the pass is idempotent.
func BackfillLegacyRecurrence(db *gorm.DB) error {
	var goals []models.Goal
	if err := db.Where("is_recurring_home = ? AND title LIKE ?", false, "%Recurring Tasks%").Find(&goals).Error; err != nil {
		return err
	}

	for _, goal := range goals {
		if !engine.IsRecurringHomeTitle(goal.Title) {
			continue
		}
		if err := db.Model(&models.Goal{}).Where("id = ?", goal.ID).
			Update("is_recurring_home", true).Error; err != nil {
			return err
		}

		var stages []models.Stage
		if err := db.Where("goal_id = ?", goal.ID).Find(&stages).Error; err != nil {
			return err
		}

		for _, stage := range stages {
			var tasks []models.Task
			if err := db.Where("stage_id = ? AND (recurrence = ? OR recurrence IS NULL)", stage.ID, "").Find(&tasks).Error; err != nil {
				return err
			}

			for _, task := range tasks {
				recurrence, weekday := engine.InferRecurrence(stage.Name, task.Text)
				err := db.Model(&models.Task{}).Where("id = ?", task.ID).Updates(map[string]any{
					"recurrence":    recurrence,
					"reset_weekday": weekday,
				}).Error
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}
