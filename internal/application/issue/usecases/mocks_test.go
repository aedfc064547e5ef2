package usecases

import (
	"context"
	"io"

	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/domain/tag"
	"testertalk/internal/shared/logger"
)

type mockIssueRepository struct {
	SaveFunc              func(ctx context.Context, iss *issue.Issue) error
	UpdateFunc            func(ctx context.Context, iss *issue.Issue) error
	DeleteFunc            func(ctx context.Context, id uint) error
	DeleteManyFunc        func(ctx context.Context, ids []uint) (int64, error)
	GetByIDFunc           func(ctx context.Context, id uint) (*issue.Issue, error)
	ListFunc              func(ctx context.Context, filter issue.IssueFilter, offset, limit int) ([]*issue.Issue, int64, error)
	SearchFunc            func(ctx context.Context, filter issue.SearchFilter) ([]*issue.Issue, error)
	ListIDTitlesFunc      func(ctx context.Context, ids []uint) ([]issue.IssueIDTitle, error)
	FindPathConflictFunc  func(ctx context.Context, target, path string, excludeIssueID uint) (*issue.PathConflict, error)
	TestCaseIDExistsFunc  func(ctx context.Context, candidate string) (bool, error)
	DistinctReleasesFunc  func(ctx context.Context) ([]string, error)
	DistinctPlatformsFunc func(ctx context.Context) ([]string, error)
	IncrementVoteFunc     func(ctx context.Context, id uint, up bool) (*issue.Issue, error)
	UpdateStatusFunc      func(ctx context.Context, id uint, status vo.IssueStatus) error
}

func (m *mockIssueRepository) Save(ctx context.Context, iss *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, iss)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, iss *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, iss)
	}
	return nil
}

func (m *mockIssueRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockIssueRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if m.DeleteManyFunc != nil {
		return m.DeleteManyFunc(ctx, ids)
	}
	return 0, nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, id uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.IssueFilter, offset, limit int) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockIssueRepository) Search(ctx context.Context, filter issue.SearchFilter) ([]*issue.Issue, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockIssueRepository) ListIDTitles(ctx context.Context, ids []uint) ([]issue.IssueIDTitle, error) {
	if m.ListIDTitlesFunc != nil {
		return m.ListIDTitlesFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockIssueRepository) FindPathConflict(ctx context.Context, target, path string, excludeIssueID uint) (*issue.PathConflict, error) {
	if m.FindPathConflictFunc != nil {
		return m.FindPathConflictFunc(ctx, target, path, excludeIssueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) TestCaseIDExists(ctx context.Context, candidate string) (bool, error) {
	if m.TestCaseIDExistsFunc != nil {
		return m.TestCaseIDExistsFunc(ctx, candidate)
	}
	return false, nil
}

func (m *mockIssueRepository) DistinctReleases(ctx context.Context) ([]string, error) {
	if m.DistinctReleasesFunc != nil {
		return m.DistinctReleasesFunc(ctx)
	}
	return nil, nil
}

func (m *mockIssueRepository) DistinctPlatforms(ctx context.Context) ([]string, error) {
	if m.DistinctPlatformsFunc != nil {
		return m.DistinctPlatformsFunc(ctx)
	}
	return nil, nil
}

func (m *mockIssueRepository) IncrementVote(ctx context.Context, id uint, up bool) (*issue.Issue, error) {
	if m.IncrementVoteFunc != nil {
		return m.IncrementVoteFunc(ctx, id, up)
	}
	return nil, nil
}

func (m *mockIssueRepository) UpdateStatus(ctx context.Context, id uint, status vo.IssueStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockCommentRepository struct {
	SaveFunc               func(ctx context.Context, comment *issue.Comment) error
	UpdateFunc             func(ctx context.Context, comment *issue.Comment) error
	DeleteFunc             func(ctx context.Context, id uint) error
	GetByIDFunc            func(ctx context.Context, id uint) (*issue.Comment, error)
	ListByIssueIDFunc      func(ctx context.Context, issueID uint) ([]*issue.Comment, error)
	UnverifyAllForIssueFunc func(ctx context.Context, issueID uint) error
	MarkVerifiedFunc       func(ctx context.Context, commentID uint) error
	IncrementVoteFunc      func(ctx context.Context, id uint, up bool) (*issue.Comment, error)
	StatsByIssueIDsFunc    func(ctx context.Context, issueIDs []uint) (map[uint]issue.CommentStats, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *issue.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *issue.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uint) (*issue.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	if m.ListByIssueIDFunc != nil {
		return m.ListByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockCommentRepository) UnverifyAllForIssue(ctx context.Context, issueID uint) error {
	if m.UnverifyAllForIssueFunc != nil {
		return m.UnverifyAllForIssueFunc(ctx, issueID)
	}
	return nil
}

func (m *mockCommentRepository) MarkVerified(ctx context.Context, commentID uint) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) IncrementVote(ctx context.Context, id uint, up bool) (*issue.Comment, error) {
	if m.IncrementVoteFunc != nil {
		return m.IncrementVoteFunc(ctx, id, up)
	}
	return nil, nil
}

func (m *mockCommentRepository) StatsByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint]issue.CommentStats, error) {
	if m.StatsByIssueIDsFunc != nil {
		return m.StatsByIssueIDsFunc(ctx, issueIDs)
	}
	return map[uint]issue.CommentStats{}, nil
}

type mockPathRepository struct {
	SaveFunc           func(ctx context.Context, path *issue.TestcasePath) error
	DeleteFunc         func(ctx context.Context, id uint) error
	GetByIDFunc        func(ctx context.Context, id uint) (*issue.TestcasePath, error)
	ListByIssueIDFunc  func(ctx context.Context, issueID uint) ([]*issue.TestcasePath, error)
	ListByIssueIDsFunc func(ctx context.Context, issueIDs []uint) (map[uint][]*issue.TestcasePath, error)
	SyncTargetFunc     func(ctx context.Context, issueID uint, target string) error
}

func (m *mockPathRepository) Save(ctx context.Context, path *issue.TestcasePath) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, path)
	}
	return nil
}

func (m *mockPathRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPathRepository) GetByID(ctx context.Context, id uint) (*issue.TestcasePath, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPathRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.TestcasePath, error) {
	if m.ListByIssueIDFunc != nil {
		return m.ListByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockPathRepository) ListByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*issue.TestcasePath, error) {
	if m.ListByIssueIDsFunc != nil {
		return m.ListByIssueIDsFunc(ctx, issueIDs)
	}
	return map[uint][]*issue.TestcasePath{}, nil
}

func (m *mockPathRepository) SyncTarget(ctx context.Context, issueID uint, target string) error {
	if m.SyncTargetFunc != nil {
		return m.SyncTargetFunc(ctx, issueID, target)
	}
	return nil
}

type mockAttachmentRepository struct {
	SaveFunc           func(ctx context.Context, attachment *issue.Attachment) error
	DeleteFunc         func(ctx context.Context, id uint) error
	GetByIDFunc        func(ctx context.Context, id uint) (*issue.Attachment, error)
	ListByIssueIDFunc  func(ctx context.Context, issueID uint) ([]*issue.Attachment, error)
	ListByIssueIDsFunc func(ctx context.Context, issueIDs []uint) (map[uint][]*issue.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *issue.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*issue.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.Attachment, error) {
	if m.ListByIssueIDFunc != nil {
		return m.ListByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*issue.Attachment, error) {
	if m.ListByIssueIDsFunc != nil {
		return m.ListByIssueIDsFunc(ctx, issueIDs)
	}
	return map[uint][]*issue.Attachment{}, nil
}

type mockTagRepository struct {
	GetOrCreateFunc     func(ctx context.Context, name string) (*tag.Tag, error)
	GetByNameFunc       func(ctx context.Context, name string) (*tag.Tag, error)
	ListFunc            func(ctx context.Context) ([]*tag.Tag, error)
	ReplaceForIssueFunc func(ctx context.Context, issueID uint, names []string) error
	AddToIssueFunc      func(ctx context.Context, issueID uint, name string) error
	NamesByIssueIDFunc  func(ctx context.Context, issueID uint) ([]string, error)
	NamesByIssueIDsFunc func(ctx context.Context, issueIDs []uint) (map[uint][]string, error)
}

func (m *mockTagRepository) GetOrCreate(ctx context.Context, name string) (*tag.Tag, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTagRepository) GetByName(ctx context.Context, name string) (*tag.Tag, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTagRepository) ReplaceForIssue(ctx context.Context, issueID uint, names []string) error {
	if m.ReplaceForIssueFunc != nil {
		return m.ReplaceForIssueFunc(ctx, issueID, names)
	}
	return nil
}

func (m *mockTagRepository) AddToIssue(ctx context.Context, issueID uint, name string) error {
	if m.AddToIssueFunc != nil {
		return m.AddToIssueFunc(ctx, issueID, name)
	}
	return nil
}

func (m *mockTagRepository) NamesByIssueID(ctx context.Context, issueID uint) ([]string, error) {
	if m.NamesByIssueIDFunc != nil {
		return m.NamesByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockTagRepository) NamesByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]string, error) {
	if m.NamesByIssueIDsFunc != nil {
		return m.NamesByIssueIDsFunc(ctx, issueIDs)
	}
	return map[uint][]string{}, nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockReviewerResolver struct {
	ResolveFunc func(ctx context.Context, bucketName string) (string, string, error)
}

func (m *mockReviewerResolver) Resolve(ctx context.Context, bucketName string) (string, string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, bucketName)
	}
	return "Admin", "", nil
}

type mockReviewerNotifier struct {
	NotifyIssueAssignedFunc func(to, reviewerName, issueTitle, issueURL string) error
}

func (m *mockReviewerNotifier) NotifyIssueAssigned(to, reviewerName, issueTitle, issueURL string) error {
	if m.NotifyIssueAssignedFunc != nil {
		return m.NotifyIssueAssignedFunc(to, reviewerName, issueTitle, issueURL)
	}
	return nil
}

type mockIDGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockIDGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TC-20250101-0001", nil
}

type mockBlobStore struct {
	StoreFunc  func(r io.Reader, originalName string) (string, int64, error)
	OpenFunc   func(storedName string) (io.ReadSeekCloser, error)
	RemoveFunc func(storedName string) error
}

func (m *mockBlobStore) Store(r io.Reader, originalName string) (string, int64, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(r, originalName)
	}
	return "stored.bin", 0, nil
}

func (m *mockBlobStore) Open(storedName string) (io.ReadSeekCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(storedName)
	}
	return nil, nil
}

func (m *mockBlobStore) Remove(storedName string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(storedName)
	}
	return nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
