package usecases

import (
	"context"
	"fmt"
	"time"

	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/domain/tag"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/goroutine"
	"testertalk/internal/shared/logger"
)

type CreateIssueCommand struct {
	Title              string
	TestcasePath       string
	Severity           string
	Build              string
	Target             string
	Description        string
	AdditionalComments string
	ReporterName       string
	Tags               []string
}

type CreateIssueResult struct {
	IssueID      uint
	TestCaseID   string
	ReviewerName string
	Status       string
	CreatedAt    time.Time
}

type CreateIssueUseCase struct {
	issueRepo issue.IssueRepository
	tagRepo   tag.Repository
	idGen     issue.TestCaseIDGenerator
	reviewers ReviewerResolver
	notifier  ReviewerNotifier
	txManager TransactionManager
	baseURL   string
	logger    logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.IssueRepository,
	tagRepo tag.Repository,
	idGen issue.TestCaseIDGenerator,
	reviewers ReviewerResolver,
	notifier ReviewerNotifier,
	txManager TransactionManager,
	baseURL string,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo: issueRepo,
		tagRepo:   tagRepo,
		idGen:     idGen,
		reviewers: reviewers,
		notifier:  notifier,
		txManager: txManager,
		baseURL:   baseURL,
		logger:    logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "title", cmd.Title, "reporter", cmd.ReporterName)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create issue command", "error", err)
		return nil, err
	}

	conflict, err := uc.issueRepo.FindPathConflict(ctx, cmd.Target, cmd.TestcasePath, 0)
	if err != nil {
		uc.logger.Errorw("failed to check path conflict", "error", err)
		return nil, err
	}
	if conflict != nil {
		return nil, errors.NewConflictError(
			fmt.Sprintf("testcase path already reported in issue #%d: %s", conflict.IssueID, conflict.Title))
	}

	newIssue, err := issue.NewIssue(
		cmd.Title,
		cmd.TestcasePath,
		vo.Severity(cmd.Severity),
		cmd.Description,
		cmd.ReporterName,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newIssue.SetBuild(cmd.Build)
	newIssue.SetTarget(cmd.Target)
	newIssue.SetAdditionalComments(cmd.AdditionalComments)

	testCaseID, err := uc.idGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate test case ID", "error", err)
		return nil, err
	}
	if err := newIssue.AppendTestCaseID(testCaseID); err != nil {
		return nil, err
	}

	bucket := issue.ExtractBucketName(cmd.TestcasePath)
	reviewerName, reviewerEmail, err := uc.reviewers.Resolve(ctx, bucket)
	if err != nil {
		uc.logger.Errorw("failed to resolve reviewer", "bucket", bucket, "error", err)
		return nil, err
	}
	newIssue.AssignReviewer(reviewerName)

	newIssue.ReplaceTags(cmd.Tags)
	if bucket != "" {
		newIssue.AddTag(bucket)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Save(txCtx, newIssue); err != nil {
			return err
		}
		return uc.tagRepo.ReplaceForIssue(txCtx, newIssue.ID(), newIssue.Tags())
	})
	if err != nil {
		uc.logger.Errorw("failed to save issue", "error", err)
		return nil, err
	}

	uc.logger.Infow("issue created",
		"issue_id", newIssue.ID(),
		"test_case_id", testCaseID,
		"reviewer", reviewerName)

	if reviewerEmail != "" {
		issueID := newIssue.ID()
		issueTitle := newIssue.Title()
		issueURL := fmt.Sprintf("%s/issues/%d", uc.baseURL, issueID)
		log := uc.logger
		notifier := uc.notifier
		goroutine.SafeGo(log, "notify-reviewer", func() {
			if err := notifier.NotifyIssueAssigned(reviewerEmail, reviewerName, issueTitle, issueURL); err != nil {
				log.Warnw("reviewer notification failed", "issue_id", issueID, "error", err)
			}
		})
	}

	return &CreateIssueResult{
		IssueID:      newIssue.ID(),
		TestCaseID:   testCaseID,
		ReviewerName: reviewerName,
		Status:       newIssue.Status().String(),
		CreatedAt:    newIssue.CreatedAt(),
	}, nil
}

func (uc *CreateIssueUseCase) validateCommand(cmd CreateIssueCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.TestcasePath) == 0 {
		return errors.NewValidationError("testcase path is required")
	}
	if len(cmd.TestcasePath) > 500 {
		return errors.NewValidationError("testcase path exceeds maximum length of 500 characters")
	}
	if !vo.Severity(cmd.Severity).IsValid() {
		return errors.NewValidationError("invalid severity")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.ReporterName) == 0 {
		return errors.NewValidationError("reporter name is required")
	}
	return nil
}
