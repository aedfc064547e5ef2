package models

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	IssueID    uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	AuthorName string `gorm:"size:100;not null"`
	Verified   bool   `gorm:"not null;default:false;index"`
	Upvotes    int    `gorm:"not null;default:0"`
	Downvotes  int    `gorm:"not null;default:0"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "comments"
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	IssueID      uint   `gorm:"not null;index"`
	OriginalName string `gorm:"size:255;not null"`
	StoredName   string `gorm:"size:100;not null;uniqueIndex"`
	ContentType  string `gorm:"size:100"`
	Size         int64  `gorm:"not null;default:0"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}
