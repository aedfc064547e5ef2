package issue

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	issuedto "testertalk/internal/application/issue/dto"
	"testertalk/internal/application/issue/usecases"
	"testertalk/internal/interfaces/http/handlers/testutil"
	"testertalk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateIssueUC struct {
	result  *usecases.CreateIssueResult
	err     error
	lastCmd usecases.CreateIssueCommand
}

func (m *mockCreateIssueUC) Execute(_ context.Context, cmd usecases.CreateIssueCommand) (*usecases.CreateIssueResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUpdateIssueUC struct {
	result *issuedto.IssueDTO
	err    error
}

func (m *mockUpdateIssueUC) Execute(_ context.Context, _ usecases.UpdateIssueCommand) (*issuedto.IssueDTO, error) {
	return m.result, m.err
}

type mockGetIssueUC struct {
	result    *issuedto.IssueDTO
	err       error
	lastQuery usecases.GetIssueQuery
}

func (m *mockGetIssueUC) Execute(_ context.Context, query usecases.GetIssueQuery) (*issuedto.IssueDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockListIssuesUC struct {
	result    *usecases.ListIssuesResult
	err       error
	lastQuery usecases.ListIssuesQuery
}

func (m *mockListIssuesUC) Execute(_ context.Context, query usecases.ListIssuesQuery) (*usecases.ListIssuesResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockSearchIssuesUC struct {
	result    []*issuedto.IssueDTO
	err       error
	lastQuery usecases.SearchIssuesQuery
}

func (m *mockSearchIssuesUC) Execute(_ context.Context, query usecases.SearchIssuesQuery) ([]*issuedto.IssueDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockMoveToCCRUC struct {
	result *issuedto.IssueDTO
	err    error
}

func (m *mockMoveToCCRUC) Execute(_ context.Context, _ usecases.MoveToCCRCommand) (*issuedto.IssueDTO, error) {
	return m.result, m.err
}

type mockVoteIssueUC struct {
	result  *usecases.VoteResult
	err     error
	lastCmd usecases.VoteIssueCommand
}

func (m *mockVoteIssueUC) Execute(_ context.Context, cmd usecases.VoteIssueCommand) (*usecases.VoteResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockAddPathUC struct {
	result *usecases.AddTestcasePathResult
	err    error
}

func (m *mockAddPathUC) Execute(_ context.Context, _ usecases.AddTestcasePathCommand) (*usecases.AddTestcasePathResult, error) {
	return m.result, m.err
}

type mockRemovePathUC struct {
	err error
}

func (m *mockRemovePathUC) Execute(_ context.Context, _ usecases.RemoveTestcasePathCommand) error {
	return m.err
}

type mockAddCommentUC struct {
	result  *issuedto.CommentDTO
	err     error
	lastCmd usecases.AddCommentCommand
}

func (m *mockAddCommentUC) Execute(_ context.Context, cmd usecases.AddCommentCommand) (*issuedto.CommentDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListCommentsUC struct {
	result []issuedto.CommentDTO
	err    error
}

func (m *mockListCommentsUC) Execute(_ context.Context, _ usecases.ListCommentsQuery) ([]issuedto.CommentDTO, error) {
	return m.result, m.err
}

type mockVerifySolutionUC struct {
	result  *usecases.VerifySolutionResult
	err     error
	lastCmd usecases.VerifySolutionCommand
}

func (m *mockVerifySolutionUC) Execute(_ context.Context, cmd usecases.VerifySolutionCommand) (*usecases.VerifySolutionResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockVoteCommentUC struct {
	result *usecases.VoteResult
	err    error
}

func (m *mockVoteCommentUC) Execute(_ context.Context, _ usecases.VoteCommentCommand) (*usecases.VoteResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createIssueUC    usecases.CreateIssueExecutor
	updateIssueUC    usecases.UpdateIssueExecutor
	getIssueUC       usecases.GetIssueExecutor
	listIssuesUC     usecases.ListIssuesExecutor
	searchIssuesUC   usecases.SearchIssuesExecutor
	moveToCCRUC      usecases.MoveToCCRExecutor
	voteIssueUC      usecases.VoteIssueExecutor
	addPathUC        usecases.AddTestcasePathExecutor
	removePathUC     usecases.RemoveTestcasePathExecutor
	addCommentUC     usecases.AddCommentExecutor
	listCommentsUC   usecases.ListCommentsExecutor
	verifySolutionUC usecases.VerifySolutionExecutor
	voteCommentUC    usecases.VoteCommentExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(HandlerConfig{
		CreateIssue:    deps.createIssueUC,
		UpdateIssue:    deps.updateIssueUC,
		GetIssue:       deps.getIssueUC,
		ListIssues:     deps.listIssuesUC,
		SearchIssues:   deps.searchIssuesUC,
		MoveToCCR:      deps.moveToCCRUC,
		VoteIssue:      deps.voteIssueUC,
		AddPath:        deps.addPathUC,
		RemovePath:     deps.removePathUC,
		AddComment:     deps.addCommentUC,
		ListComments:   deps.listCommentsUC,
		VerifySolution: deps.verifySolutionUC,
		VoteComment:    deps.voteCommentUC,
		Logger:         testutil.NewMockLogger(),
	})
}

// =====================================================================
// Create
// =====================================================================

func TestHandler_Create_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockCreateIssueUC{
		result: &usecases.CreateIssueResult{
			IssueID:      7,
			TestCaseID:   "TC-20250901-0001",
			ReviewerName: "Morgan",
			Status:       "open",
			CreatedAt:    now,
		},
	}
	handler := newTestHandler(testDeps{createIssueUC: mockUC})

	reqBody := CreateIssueRequest{
		Title:        "spurious timing failure",
		TestcasePath: "/lan/fed/etpv5/release/251/lnx86/etautotest/timing/flow/tc001",
		Severity:     "High",
		Description:  "fails on every nightly run",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues", reqBody)
	testutil.SetAuthContext(c, 1, "kchen")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "kchen", mockUC.lastCmd.ReporterName)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestHandler_Create_AnonymousGetsSystemReporter(t *testing.T) {
	mockUC := &mockCreateIssueUC{
		result: &usecases.CreateIssueResult{IssueID: 7, Status: "open"},
	}
	handler := newTestHandler(testDeps{createIssueUC: mockUC})

	reqBody := CreateIssueRequest{
		Title:        "spurious timing failure",
		TestcasePath: "/lan/fed/etpv5/release/251/lnx86/etautotest/timing/flow/tc001",
		Severity:     "High",
		Description:  "fails on every nightly run",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues", reqBody)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "System", mockUC.lastCmd.ReporterName)
}

func TestHandler_Create_BindError(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := map[string]string{"title": "only title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues", reqBody)
	testutil.SetAuthContext(c, 1, "kchen")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestHandler_Create_DuplicatePath(t *testing.T) {
	mockUC := &mockCreateIssueUC{
		err: errors.NewConflictError("testcase path already reported in issue #7"),
	}
	handler := newTestHandler(testDeps{createIssueUC: mockUC})

	reqBody := CreateIssueRequest{
		Title:        "spurious timing failure",
		TestcasePath: "/lan/fed/etpv5/release/251/lnx86/etautotest/timing/flow/tc001",
		Severity:     "High",
		Description:  "fails on every nightly run",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues", reqBody)
	testutil.SetAuthContext(c, 1, "kchen")

	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "issue #7")
}

// =====================================================================
// Get
// =====================================================================

func TestHandler_Get_Success(t *testing.T) {
	mockUC := &mockGetIssueUC{
		result: &issuedto.IssueDTO{ID: 42, Title: "spurious timing failure", Status: "open"},
	}
	handler := newTestHandler(testDeps{getIssueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/issues/42", nil)
	testutil.SetURLParam(c, "id", "42")

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, mockUC.lastQuery.RenderMarkdown)
	assert.Equal(t, uint(42), mockUC.lastQuery.IssueID)
}

func TestHandler_Get_RenderFlag(t *testing.T) {
	mockUC := &mockGetIssueUC{result: &issuedto.IssueDTO{ID: 42}}
	handler := newTestHandler(testDeps{getIssueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/issues/42", nil)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetQueryParams(c, map[string]string{"render": "true"})

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastQuery.RenderMarkdown)
}

func TestHandler_Get_NotFound(t *testing.T) {
	mockUC := &mockGetIssueUC{err: errors.NewNotFoundError("issue not found")}
	handler := newTestHandler(testDeps{getIssueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/issues/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Get_InvalidID(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/issues/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// List
// =====================================================================

func TestHandler_List_FiltersAndPagination(t *testing.T) {
	mockUC := &mockListIssuesUC{
		result: &usecases.ListIssuesResult{
			Issues:   []*issuedto.IssueDTO{{ID: 1}, {ID: 2}},
			Total:    12,
			Page:     2,
			PageSize: 2,
		},
	}
	handler := newTestHandler(testDeps{listIssuesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/issues", nil)
	testutil.SetQueryParams(c, map[string]string{
		"page":     "2",
		"per_page": "2",
		"status":   "open",
		"release":  "251",
	})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, mockUC.lastQuery.Page)
	assert.Equal(t, 2, mockUC.lastQuery.PageSize)
	require.NotNil(t, mockUC.lastQuery.Status)
	assert.Equal(t, "open", *mockUC.lastQuery.Status)
	require.NotNil(t, mockUC.lastQuery.Release)
	assert.Equal(t, "251", *mockUC.lastQuery.Release)
	assert.Nil(t, mockUC.lastQuery.Severity)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var list struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(12), list.Total)
	assert.Equal(t, 6, list.TotalPages)
}

func TestHandler_List_TestCaseIDAndReporterFilters(t *testing.T) {
	mockUC := &mockListIssuesUC{
		result: &usecases.ListIssuesResult{Issues: []*issuedto.IssueDTO{}, Page: 1, PageSize: 20},
	}
	handler := newTestHandler(testDeps{listIssuesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/issues", nil)
	testutil.SetQueryParams(c, map[string]string{
		"test_case_id":  "TC-20250101-0001",
		"reporter_name": "kchen",
	})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.lastQuery.TestCaseID)
	assert.Equal(t, "TC-20250101-0001", *mockUC.lastQuery.TestCaseID)
	require.NotNil(t, mockUC.lastQuery.Reporter)
	assert.Equal(t, "kchen", *mockUC.lastQuery.Reporter)
}

// =====================================================================
// Search
// =====================================================================

func TestHandler_Search_QueryParams(t *testing.T) {
	mockUC := &mockSearchIssuesUC{
		result: []*issuedto.IssueDTO{{ID: 3, Title: "timing flow tc001"}},
	}
	handler := newTestHandler(testDeps{searchIssuesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/search", nil)
	testutil.SetQueryParams(c, map[string]string{
		"query":    "timing",
		"severity": "High",
		"size":     "5",
	})

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "timing", mockUC.lastQuery.Query)
	require.NotNil(t, mockUC.lastQuery.Severity)
	assert.Equal(t, "High", *mockUC.lastQuery.Severity)
	assert.Equal(t, 5, mockUC.lastQuery.Size)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var payload struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	assert.Equal(t, 1, payload.Count)
}

func TestHandler_Search_TestCaseIDAndReporterFilters(t *testing.T) {
	mockUC := &mockSearchIssuesUC{result: []*issuedto.IssueDTO{}}
	handler := newTestHandler(testDeps{searchIssuesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/search", nil)
	testutil.SetQueryParams(c, map[string]string{
		"query":         "timing",
		"test_case_id":  "TC-20250101-0001",
		"reporter_name": "kchen",
	})

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.lastQuery.TestCaseID)
	assert.Equal(t, "TC-20250101-0001", *mockUC.lastQuery.TestCaseID)
	require.NotNil(t, mockUC.lastQuery.Reporter)
	assert.Equal(t, "kchen", *mockUC.lastQuery.Reporter)
}

func TestHandler_Search_SizeTooLarge(t *testing.T) {
	handler := newTestHandler(testDeps{searchIssuesUC: &mockSearchIssuesUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/search", nil)
	testutil.SetQueryParams(c, map[string]string{"query": "timing", "size": "5000"})

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SearchPost_Body(t *testing.T) {
	mockUC := &mockSearchIssuesUC{result: []*issuedto.IssueDTO{}}
	handler := newTestHandler(testDeps{searchIssuesUC: mockUC})

	status := "open"
	reqBody := SearchRequest{Query: "clock gating", Status: &status, Tags: []string{"nightly"}}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/search", reqBody)

	handler.SearchPost(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "clock gating", mockUC.lastQuery.Query)
	assert.Equal(t, []string{"nightly"}, mockUC.lastQuery.Tags)
}

// =====================================================================
// Votes
// =====================================================================

func TestHandler_Upvote(t *testing.T) {
	mockUC := &mockVoteIssueUC{
		result: &usecases.VoteResult{Upvotes: 4, Downvotes: 1, Score: 3},
	}
	handler := newTestHandler(testDeps{voteIssueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues/42/upvote", nil)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.Upvote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastCmd.Up)
	assert.Equal(t, uint(42), mockUC.lastCmd.IssueID)
}

func TestHandler_Downvote(t *testing.T) {
	mockUC := &mockVoteIssueUC{
		result: &usecases.VoteResult{Upvotes: 4, Downvotes: 2, Score: 2},
	}
	handler := newTestHandler(testDeps{voteIssueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues/42/downvote", nil)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.Downvote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, mockUC.lastCmd.Up)
}

// =====================================================================
// Comments
// =====================================================================

func TestHandler_AddComment_Success(t *testing.T) {
	mockUC := &mockAddCommentUC{
		result: &issuedto.CommentDTO{ID: 5, IssueID: 42, Content: "rerun with the fixed seed"},
	}
	handler := newTestHandler(testDeps{addCommentUC: mockUC})

	reqBody := AddCommentRequest{Content: "rerun with the fixed seed"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues/42/comments", reqBody)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.AddComment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(42), mockUC.lastCmd.IssueID)
	assert.Equal(t, "kchen", mockUC.lastCmd.AuthorName)
}

func TestHandler_VerifySolution(t *testing.T) {
	mockUC := &mockVerifySolutionUC{
		result: &usecases.VerifySolutionResult{IssueID: 42, CommentID: 5, IssueStatus: "resolved"},
	}
	handler := newTestHandler(testDeps{verifySolutionUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues/42/comments/5/verify", nil)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetURLParam(c, "commentID", "5")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.VerifySolution(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), mockUC.lastCmd.IssueID)
	assert.Equal(t, uint(5), mockUC.lastCmd.CommentID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var payload struct {
		IssueStatus string `json:"IssueStatus"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	assert.Equal(t, "resolved", payload.IssueStatus)
}

func TestHandler_VerifySolution_WrongIssue(t *testing.T) {
	mockUC := &mockVerifySolutionUC{err: errors.NewNotFoundError("comment not found")}
	handler := newTestHandler(testDeps{verifySolutionUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues/42/comments/5/verify", nil)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetURLParam(c, "commentID", "5")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.VerifySolution(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// Paths
// =====================================================================

func TestHandler_AddPath_Success(t *testing.T) {
	mockUC := &mockAddPathUC{
		result: &usecases.AddTestcasePathResult{PathID: 3},
	}
	handler := newTestHandler(testDeps{addPathUC: mockUC})

	reqBody := AddPathRequest{Path: "/lan/fed/etpv5/release/251/lnx86/etautotest/timing/flow/tc002"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues/42/paths", reqBody)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.AddPath(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_RemovePath_Success(t *testing.T) {
	handler := newTestHandler(testDeps{removePathUC: &mockRemovePathUC{}})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/issues/42/paths/3", nil)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetURLParam(c, "pathID", "3")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.RemovePath(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// =====================================================================
// MoveToCCR
// =====================================================================

func TestHandler_MoveToCCR_Success(t *testing.T) {
	mockUC := &mockMoveToCCRUC{
		result: &issuedto.IssueDTO{ID: 42, Status: "ccr", CCRNumber: "CCR-1001"},
	}
	handler := newTestHandler(testDeps{moveToCCRUC: mockUC})

	reqBody := MoveToCCRRequest{CCRNumber: "CCR-1001"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues/42/move-to-ccr", reqBody)
	testutil.SetURLParam(c, "id", "42")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.MoveToCCR(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MoveToCCR_MissingNumber(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/issues/42/move-to-ccr", map[string]string{})
	testutil.SetURLParam(c, "id", "42")
	testutil.SetAuthContext(c, 1, "kchen")

	handler.MoveToCCR(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
