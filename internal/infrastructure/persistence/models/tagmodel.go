package models

type TagModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}

type IssueTagModel struct {
	IssueID uint `gorm:"primaryKey"`
	TagID   uint `gorm:"primaryKey"`
}

func (IssueTagModel) TableName() string {
	return "issue_tags"
}
