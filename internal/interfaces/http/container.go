package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	issueUsecases "testertalk/internal/application/issue/usecases"
	reviewerUsecases "testertalk/internal/application/reviewer/usecases"
	userUsecases "testertalk/internal/application/user/usecases"
	"testertalk/internal/infrastructure/auth"
	"testertalk/internal/infrastructure/config"
	"testertalk/internal/infrastructure/email"
	"testertalk/internal/infrastructure/ratelimit"
	"testertalk/internal/infrastructure/repository"
	"testertalk/internal/infrastructure/services"
	"testertalk/internal/infrastructure/storage"
	adminhandlers "testertalk/internal/interfaces/http/handlers/admin"
	authhandlers "testertalk/internal/interfaces/http/handlers/auth"
	issuehandlers "testertalk/internal/interfaces/http/handlers/issue"
	metahandlers "testertalk/internal/interfaces/http/handlers/meta"
	"testertalk/internal/interfaces/http/middleware"
	"testertalk/internal/shared/db"
	"testertalk/internal/shared/logger"
	"testertalk/internal/shared/services/markdown"
)

// Container wires repositories, use cases and handlers together and owns
// the gin engine they are mounted on.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	issueHandler *issuehandlers.Handler
	authHandler  *authhandlers.Handler
	metaHandler  *metahandlers.Handler
	adminHandler *adminhandlers.Handler

	authMiddleware *middleware.AuthMiddleware
	authRateLimit  gin.HandlerFunc
	voteRateLimit  gin.HandlerFunc
}

// NewContainer builds the full dependency graph. The redis client may be
// nil, in which case rate limiting is disabled.
func NewContainer(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		db:    database,
		cfg:   cfg,
		log:   log,
		redis: redisClient,
	}

	// Repositories
	issueRepo := repository.NewIssueRepository(database)
	pathRepo := repository.NewPathRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	tagRepo := repository.NewTagRepository(database)
	userRepo := repository.NewUserRepository(database)
	reviewerRepo := repository.NewBucketReviewerRepository(database)

	// Infrastructure services
	txManager := db.NewTransactionManager(database)
	idGen := services.NewTestCaseIDGenerator(issueRepo)
	reviewerResolver := services.NewBucketReviewerResolver(reviewerRepo)
	markdownSvc := markdown.NewService()
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	blobs, err := storage.NewLocalFileStore(cfg.Storage.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize attachment storage: %w", err)
	}

	var notifier issueUsecases.ReviewerNotifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPReviewerNotifier(&cfg.Email)
	} else {
		notifier = email.NewNoopReviewerNotifier()
	}

	// Issue use cases
	createIssue := issueUsecases.NewCreateIssueUseCase(issueRepo, tagRepo, idGen, reviewerResolver, notifier, txManager, cfg.Server.BaseURL, log)
	updateIssue := issueUsecases.NewUpdateIssueUseCase(issueRepo, pathRepo, commentRepo, tagRepo, txManager, log)
	getIssue := issueUsecases.NewGetIssueUseCase(issueRepo, commentRepo, attachmentRepo, markdownSvc, log)
	listIssues := issueUsecases.NewListIssuesUseCase(issueRepo, commentRepo, log)
	searchIssues := issueUsecases.NewSearchIssuesUseCase(issueRepo, commentRepo, log)
	deleteIssue := issueUsecases.NewDeleteIssueUseCase(issueRepo, attachmentRepo, blobs, txManager, log)
	bulkDelete := issueUsecases.NewBulkDeleteIssuesUseCase(issueRepo, attachmentRepo, blobs, txManager, log)
	moveToCCR := issueUsecases.NewMoveToCCRUseCase(issueRepo, commentRepo, log)
	voteIssue := issueUsecases.NewVoteIssueUseCase(issueRepo, log)
	addPath := issueUsecases.NewAddTestcasePathUseCase(issueRepo, pathRepo, tagRepo, txManager, log)
	removePath := issueUsecases.NewRemoveTestcasePathUseCase(pathRepo, log)
	addComment := issueUsecases.NewAddCommentUseCase(issueRepo, commentRepo, log)
	listComments := issueUsecases.NewListCommentsUseCase(issueRepo, commentRepo, log)
	deleteComment := issueUsecases.NewDeleteCommentUseCase(commentRepo, log)
	verifySolution := issueUsecases.NewVerifySolutionUseCase(issueRepo, commentRepo, txManager, log)
	voteComment := issueUsecases.NewVoteCommentUseCase(commentRepo, log)
	addAttachment := issueUsecases.NewAddAttachmentUseCase(issueRepo, attachmentRepo, blobs, cfg.Storage.MaxFileSize, log)
	getAttachment := issueUsecases.NewGetAttachmentUseCase(attachmentRepo, blobs, log)
	listOptions := issueUsecases.NewListOptionsUseCase(issueRepo, tagRepo, log)
	listTitles := issueUsecases.NewListIssueTitlesUseCase(issueRepo, log)

	// User use cases
	register := userUsecases.NewRegisterUseCase(userRepo, hasher, log)
	login := userUsecases.NewLoginUseCase(userRepo, hasher, jwtSvc, log)
	getCurrentUser := userUsecases.NewGetCurrentUserUseCase(userRepo, log)

	// Reviewer use cases
	upsertReviewer := reviewerUsecases.NewUpsertBucketReviewerUseCase(reviewerRepo, log)
	listReviewers := reviewerUsecases.NewListBucketReviewersUseCase(reviewerRepo, log)
	deleteReviewer := reviewerUsecases.NewDeleteBucketReviewerUseCase(reviewerRepo, log)

	// Handlers
	c.issueHandler = issuehandlers.NewHandler(issuehandlers.HandlerConfig{
		CreateIssue:    createIssue,
		UpdateIssue:    updateIssue,
		GetIssue:       getIssue,
		ListIssues:     listIssues,
		SearchIssues:   searchIssues,
		MoveToCCR:      moveToCCR,
		VoteIssue:      voteIssue,
		AddPath:        addPath,
		RemovePath:     removePath,
		AddComment:     addComment,
		ListComments:   listComments,
		VerifySolution: verifySolution,
		VoteComment:    voteComment,
		AddAttachment:  addAttachment,
		GetAttachment:  getAttachment,
		Logger:         log,
	})
	c.authHandler = authhandlers.NewHandler(register, login, getCurrentUser, log)
	c.metaHandler = metahandlers.NewHandler(listOptions, log)
	c.adminHandler = adminhandlers.NewHandler(adminhandlers.HandlerConfig{
		UpdateIssue:    updateIssue,
		DeleteIssue:    deleteIssue,
		BulkDelete:     bulkDelete,
		ListTitles:     listTitles,
		DeleteComment:  deleteComment,
		UpsertReviewer: upsertReviewer,
		ListReviewers:  listReviewers,
		DeleteReviewer: deleteReviewer,
		Logger:         log,
	})

	// Middleware
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, log)
	c.buildRateLimits()

	return c, nil
}

// buildRateLimits throttles login attempts and vote spamming when Redis is
// available. Without Redis requests pass through unchecked.
func (c *Container) buildRateLimits() {
	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}

	c.authRateLimit = middleware.RateLimit(limiter, "auth", ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
	})
	c.voteRateLimit = middleware.RateLimit(limiter, "vote", ratelimit.RateLimitConfig{
		RequestsPerMinute: 30,
		RequestsPerHour:   300,
	})
}

// Engine returns the configured gin engine, building it on first use.
func (c *Container) Engine() *gin.Engine {
	if c.engine == nil {
		c.engine = c.buildEngine()
	}
	return c.engine
}
