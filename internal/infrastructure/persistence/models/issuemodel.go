package models

// IssueModel persists the issue aggregate root. The composite unique index
// on (target, testcase_path) is the storage-level guarantee that a testcase
// path is claimed at most once per build target; rows with a NULL target
// never participate in the constraint.
type IssueModel struct {
	ID                 uint    `gorm:"primaryKey"`
	Title              string  `gorm:"size:200;not null"`
	TestcasePath       string  `gorm:"size:500;not null;uniqueIndex:uk_issues_target_path,priority:2"`
	Severity           string  `gorm:"size:20;not null;index"`
	// RELEASE is a reserved word in MySQL, hence the column name.
	ReleaseCode        string  `gorm:"column:release_code;size:20;index"`
	Platform           string  `gorm:"size:50;index"`
	Build              string  `gorm:"size:50"`
	Target             *string `gorm:"size:100;uniqueIndex:uk_issues_target_path,priority:1;index"`
	Description        string  `gorm:"type:text;not null"`
	AdditionalComments string  `gorm:"type:text"`
	ReporterName       string  `gorm:"size:100;not null;index"`
	ReviewerName       string  `gorm:"size:100;index"`
	Status             string  `gorm:"size:20;not null;index"`
	CCRNumber          string  `gorm:"size:50"`
	Upvotes            int     `gorm:"not null;default:0"`
	Downvotes          int     `gorm:"not null;default:0"`
	CreatedAt          int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return "issues"
}

// IssueTestCaseIDModel keeps the generated test-case identifiers of an
// issue as an ordered child table.
type IssueTestCaseIDModel struct {
	ID       uint   `gorm:"primaryKey"`
	IssueID  uint   `gorm:"not null;index;uniqueIndex:uk_issue_tcid,priority:1"`
	Value    string `gorm:"size:30;not null;index;uniqueIndex:uk_issue_tcid,priority:2"`
	Position int    `gorm:"not null"`
}

func (IssueTestCaseIDModel) TableName() string {
	return "issue_test_case_ids"
}

// TestcasePathModel stores secondary testcase paths. Target mirrors the
// owning issue's target so the same composite unique index can cover
// secondary paths too; it is rewritten whenever the issue's target changes.
// Release and platform are parsed out of the path when it is added.
type TestcasePathModel struct {
	ID          uint    `gorm:"primaryKey"`
	IssueID     uint    `gorm:"not null;index"`
	Path        string  `gorm:"size:500;not null;uniqueIndex:uk_paths_target_path,priority:2"`
	Target      *string `gorm:"size:100;uniqueIndex:uk_paths_target_path,priority:1"`
	ReleaseCode string  `gorm:"column:release_code;size:20"`
	Platform    string  `gorm:"size:50"`
	AddedBy     string  `gorm:"size:100;not null"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
}

func (TestcasePathModel) TableName() string {
	return "testcase_paths"
}
