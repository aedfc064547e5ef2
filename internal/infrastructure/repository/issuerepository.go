package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/infrastructure/persistence/mappers"
	"testertalk/internal/infrastructure/persistence/models"
	"testertalk/internal/shared/db"
	apperrors "testertalk/internal/shared/errors"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(database *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     database,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, iss *issue.Issue) error {
	model := r.mapper.ToModel(iss)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("testcase path already exists for this target")
		}
		return fmt.Errorf("failed to save issue: %w", err)
	}

	if err := iss.SetID(model.ID); err != nil {
		return err
	}

	return r.replaceTestCaseIDs(tx, model.ID, iss.TestCaseIDs())
}

func (r *IssueRepository) Update(ctx context.Context, iss *issue.Issue) error {
	model := r.mapper.ToModel(iss)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces empty strings and NULL targets through; a plain
	// Updates(model) would skip zero values.
	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Select("title", "testcase_path", "severity", "release_code", "platform",
			"build", "target", "description", "additional_comments",
			"reporter_name", "reviewer_name", "status", "ccr_number", "updated_at").
		Updates(model)

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("testcase path already exists for this target")
		}
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	return r.replaceTestCaseIDs(tx, model.ID, iss.TestCaseIDs())
}

func (r *IssueRepository) replaceTestCaseIDs(tx *gorm.DB, issueID uint, ids []string) error {
	if err := tx.Where("issue_id = ?", issueID).Delete(&models.IssueTestCaseIDModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear test case IDs: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	rows := make([]models.IssueTestCaseIDModel, 0, len(ids))
	for pos, value := range ids {
		rows = append(rows, models.IssueTestCaseIDModel{
			IssueID:  issueID,
			Value:    value,
			Position: pos,
		})
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save test case IDs: %w", err)
	}
	return nil
}

func (r *IssueRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.IssueModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("issue not found")
	}

	return r.deleteChildren(tx, []uint{id})
}

func (r *IssueRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id IN ?", ids).Delete(&models.IssueModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete issues: %w", result.Error)
	}

	if err := r.deleteChildren(tx, ids); err != nil {
		return 0, err
	}

	return result.RowsAffected, nil
}

func (r *IssueRepository) deleteChildren(tx *gorm.DB, issueIDs []uint) error {
	children := []interface{}{
		&models.IssueTestCaseIDModel{},
		&models.TestcasePathModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.IssueTagModel{},
	}
	for _, child := range children {
		if err := tx.Where("issue_id IN ?", issueIDs).Delete(child).Error; err != nil {
			return fmt.Errorf("failed to delete issue children: %w", err)
		}
	}
	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, id uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	iss, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadChildren(tx, []*issue.Issue{iss}); err != nil {
		return nil, err
	}

	return iss, nil
}

func (r *IssueRepository) List(ctx context.Context, filter issue.IssueFilter, offset, limit int) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.IssueModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	var rows []models.IssueModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues, err := r.toDomainList(tx, rows)
	if err != nil {
		return nil, 0, err
	}

	return issues, total, nil
}

func (r *IssueRepository) applyFilter(query *gorm.DB, filter issue.IssueFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", filter.Severity.String())
	}
	if filter.Release != nil {
		query = query.Where("release_code = ?", *filter.Release)
	}
	if filter.Platform != nil {
		query = query.Where("platform = ?", *filter.Platform)
	}
	if filter.Build != nil {
		query = query.Where("build = ?", *filter.Build)
	}
	if filter.Target != nil {
		query = query.Where("target = ?", *filter.Target)
	}
	if filter.Reporter != nil {
		query = query.Where("reporter_name = ?", *filter.Reporter)
	}
	if filter.Reviewer != nil {
		query = query.Where("reviewer_name = ?", *filter.Reviewer)
	}
	if filter.Tag != nil {
		query = query.Where(
			"id IN (SELECT it.issue_id FROM issue_tags it JOIN tags t ON t.id = it.tag_id WHERE t.name = ?)",
			*filter.Tag,
		)
	}
	if filter.TestCaseID != nil {
		query = query.Where(
			"id IN (SELECT issue_id FROM issue_test_case_ids WHERE value = ?)",
			*filter.TestCaseID,
		)
	}
	return query
}

func (r *IssueRepository) Search(ctx context.Context, filter issue.SearchFilter) ([]*issue.Issue, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.IssueModel{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR id IN (SELECT issue_id FROM issue_test_case_ids WHERE LOWER(value) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", filter.Severity.String())
	}
	if filter.Release != nil {
		query = query.Where("release_code = ?", *filter.Release)
	}
	if filter.Platform != nil {
		query = query.Where("platform = ?", *filter.Platform)
	}
	if filter.Build != nil {
		query = query.Where("build = ?", *filter.Build)
	}
	if filter.Target != nil {
		query = query.Where("target = ?", *filter.Target)
	}
	if filter.Reporter != nil {
		query = query.Where("reporter_name = ?", *filter.Reporter)
	}
	if filter.TestCaseID != nil {
		query = query.Where(
			"id IN (SELECT issue_id FROM issue_test_case_ids WHERE value = ?)",
			*filter.TestCaseID,
		)
	}
	// filter.Tags is accepted for API compatibility but intentionally not
	// applied to the query.

	var rows []models.IssueModel
	if err := query.
		Order("created_at DESC").
		Limit(filter.Size).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", err)
	}

	return r.toDomainList(tx, rows)
}

func (r *IssueRepository) ListIDTitles(ctx context.Context, ids []uint) ([]issue.IssueIDTitle, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []issue.IssueIDTitle
	if err := tx.
		Model(&models.IssueModel{}).
		Select("id", "title").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list issue titles: %w", err)
	}
	return rows, nil
}

func (r *IssueRepository) FindPathConflict(ctx context.Context, target, path string, excludeIssueID uint) (*issue.PathConflict, error) {
	if target == "" || path == "" {
		return nil, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var primary struct {
		ID    uint
		Title string
	}
	query := tx.
		Model(&models.IssueModel{}).
		Select("id", "title").
		Where("target = ? AND testcase_path = ?", target, path)
	if excludeIssueID != 0 {
		query = query.Where("id <> ?", excludeIssueID)
	}
	err := query.First(&primary).Error
	if err == nil {
		return &issue.PathConflict{IssueID: primary.ID, Title: primary.Title, Secondary: false}, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check primary path conflict: %w", err)
	}

	var secondary struct {
		IssueID uint
		Title   string
	}
	query = tx.
		Table("testcase_paths").
		Select("testcase_paths.issue_id", "issues.title").
		Joins("JOIN issues ON issues.id = testcase_paths.issue_id").
		Where("testcase_paths.target = ? AND testcase_paths.path = ?", target, path)
	if excludeIssueID != 0 {
		query = query.Where("testcase_paths.issue_id <> ?", excludeIssueID)
	}
	err = query.First(&secondary).Error
	if err == nil {
		return &issue.PathConflict{IssueID: secondary.IssueID, Title: secondary.Title, Secondary: true}, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check secondary path conflict: %w", err)
	}

	return nil, nil
}

func (r *IssueRepository) TestCaseIDExists(ctx context.Context, candidate string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.IssueTestCaseIDModel{}).
		Where("value = ?", candidate).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check test case ID: %w", err)
	}
	return count > 0, nil
}

func (r *IssueRepository) DistinctReleases(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "release_code")
}

func (r *IssueRepository) DistinctPlatforms(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "platform")
}

func (r *IssueRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var values []string
	if err := tx.
		Model(&models.IssueModel{}).
		Distinct(column).
		Where(column+" <> ''").
		Order(column).
		Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("failed to load distinct %s values: %w", column, err)
	}
	return values, nil
}

func (r *IssueRepository) IncrementVote(ctx context.Context, id uint, up bool) (*issue.Issue, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	column := "downvotes"
	if up {
		column = "upvotes"
	}

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to record vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("issue not found")
	}

	return r.GetByID(ctx, id)
}

func (r *IssueRepository) UpdateStatus(ctx context.Context, id uint, status vo.IssueStatus) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return fmt.Errorf("failed to update issue status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("issue not found")
	}
	return nil
}

func (r *IssueRepository) toDomainList(tx *gorm.DB, rows []models.IssueModel) ([]*issue.Issue, error) {
	issues := make([]*issue.Issue, 0, len(rows))
	for i := range rows {
		iss, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		issues = append(issues, iss)
	}

	if err := r.loadChildren(tx, issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// loadChildren batch-loads test case IDs, tags, and secondary paths onto
// already mapped aggregates.
func (r *IssueRepository) loadChildren(tx *gorm.DB, issues []*issue.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(issues))
	byID := make(map[uint]*issue.Issue, len(issues))
	for _, iss := range issues {
		ids = append(ids, iss.ID())
		byID[iss.ID()] = iss
	}

	var tcidRows []models.IssueTestCaseIDModel
	if err := tx.
		Where("issue_id IN ?", ids).
		Order("issue_id, position").
		Find(&tcidRows).Error; err != nil {
		return fmt.Errorf("failed to load test case IDs: %w", err)
	}
	tcids := make(map[uint][]string, len(issues))
	for _, row := range tcidRows {
		tcids[row.IssueID] = append(tcids[row.IssueID], row.Value)
	}

	var tagRows []struct {
		IssueID uint
		Name    string
	}
	if err := tx.
		Table("issue_tags").
		Select("issue_tags.issue_id", "tags.name").
		Joins("JOIN tags ON tags.id = issue_tags.tag_id").
		Where("issue_tags.issue_id IN ?", ids).
		Order("tags.name").
		Find(&tagRows).Error; err != nil {
		return fmt.Errorf("failed to load issue tags: %w", err)
	}
	tags := make(map[uint][]string, len(issues))
	for _, row := range tagRows {
		tags[row.IssueID] = append(tags[row.IssueID], row.Name)
	}

	var pathRows []models.TestcasePathModel
	if err := tx.
		Where("issue_id IN ?", ids).
		Order("created_at").
		Find(&pathRows).Error; err != nil {
		return fmt.Errorf("failed to load secondary paths: %w", err)
	}
	paths := make(map[uint][]*issue.TestcasePath, len(issues))
	for i := range pathRows {
		p, err := r.mapper.PathToDomain(&pathRows[i])
		if err != nil {
			return err
		}
		paths[p.IssueID()] = append(paths[p.IssueID()], p)
	}

	for id, iss := range byID {
		iss.SetLoadedTestCaseIDs(tcids[id])
		iss.SetLoadedTags(tags[id])
		iss.AttachPaths(paths[id])
	}
	return nil
}
