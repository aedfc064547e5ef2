package migration

import "testertalk/internal/infrastructure/persistence/models"

// AllModels returns every persistence model in dependency order for GORM
// AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.IssueModel{},
		&models.IssueTestCaseIDModel{},
		&models.TestcasePathModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.TagModel{},
		&models.IssueTagModel{},
		&models.BucketReviewerModel{},
	}
}
