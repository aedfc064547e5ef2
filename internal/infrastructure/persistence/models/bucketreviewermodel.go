package models

type BucketReviewerModel struct {
	ID           uint   `gorm:"primaryKey"`
	BucketName   string `gorm:"size:100;not null;uniqueIndex"`
	ReviewerName string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (BucketReviewerModel) TableName() string {
	return "bucket_reviewers"
}
