package usecases

import (
	"context"
	"fmt"

	"testertalk/internal/application/issue/dto"
	"testertalk/internal/domain/issue"
	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/domain/tag"
	"testertalk/internal/shared/errors"
	"testertalk/internal/shared/logger"
)

// UpdateIssueCommand carries a partial update; nil fields are untouched.
type UpdateIssueCommand struct {
	IssueID            uint
	Title              *string
	TestcasePath       *string
	Severity           *string
	Build              *string
	Target             *string
	Description        *string
	AdditionalComments *string
	Status             *string
	Tags               []string
}

type UpdateIssueUseCase struct {
	issueRepo   issue.IssueRepository
	pathRepo    issue.PathRepository
	commentRepo issue.CommentRepository
	tagRepo     tag.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewUpdateIssueUseCase(
	issueRepo issue.IssueRepository,
	pathRepo issue.PathRepository,
	commentRepo issue.CommentRepository,
	tagRepo tag.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateIssueUseCase {
	return &UpdateIssueUseCase{
		issueRepo:   issueRepo,
		pathRepo:    pathRepo,
		commentRepo: commentRepo,
		tagRepo:     tagRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UpdateIssueUseCase) Execute(ctx context.Context, cmd UpdateIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing update issue use case", "issue_id", cmd.IssueID)

	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	targetChanged := cmd.Target != nil && *cmd.Target != iss.Target()
	pathChanged := cmd.TestcasePath != nil && *cmd.TestcasePath != iss.TestcasePath()

	// Resolve the effective target and primary path before the conflict
	// check so a combined path+target change is validated as a unit.
	effectiveTarget := iss.Target()
	if cmd.Target != nil {
		effectiveTarget = *cmd.Target
	}
	effectivePath := iss.TestcasePath()
	if cmd.TestcasePath != nil {
		effectivePath = *cmd.TestcasePath
	}

	if pathChanged || targetChanged {
		conflict, err := uc.issueRepo.FindPathConflict(ctx, effectiveTarget, effectivePath, iss.ID())
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, errors.NewConflictError(
				fmt.Sprintf("testcase path already reported in issue #%d: %s", conflict.IssueID, conflict.Title))
		}
	}

	if cmd.Title != nil {
		if err := iss.SetTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if pathChanged {
		if err := iss.SetTestcasePath(*cmd.TestcasePath); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Severity != nil {
		if err := iss.SetSeverity(vo.Severity(*cmd.Severity)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Build != nil {
		iss.SetBuild(*cmd.Build)
	}
	if targetChanged {
		iss.SetTarget(*cmd.Target)
	}
	if cmd.Description != nil {
		if err := iss.SetDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.AdditionalComments != nil {
		iss.SetAdditionalComments(*cmd.AdditionalComments)
	}
	if cmd.Status != nil {
		status, err := vo.NewIssueStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := iss.ChangeStatus(status); err != nil {
			return nil, errors.NewStateError(err.Error())
		}
	}

	// Tags are a full replacement when provided. The bucket tag is only
	// re-added when the path changed; stale bucket tags otherwise survive.
	if cmd.Tags != nil {
		iss.ReplaceTags(cmd.Tags)
	}
	if pathChanged {
		if bucket := issue.ExtractBucketName(iss.TestcasePath()); bucket != "" {
			iss.AddTag(bucket)
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}
		if targetChanged {
			if err := uc.pathRepo.SyncTarget(txCtx, iss.ID(), iss.Target()); err != nil {
				return err
			}
		}
		if cmd.Tags != nil || pathChanged {
			if err := uc.tagRepo.ReplaceForIssue(txCtx, iss.ID(), iss.Tags()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update issue", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("issue updated", "issue_id", iss.ID())

	stats, err := uc.commentRepo.StatsByIssueIDs(ctx, []uint{iss.ID()})
	if err != nil {
		return nil, err
	}
	return dto.ToIssueDTO(iss, stats[iss.ID()]), nil
}
