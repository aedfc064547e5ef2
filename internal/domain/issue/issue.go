package issue

import (
	"fmt"
	"time"

	vo "testertalk/internal/domain/issue/valueobjects"
	"testertalk/internal/shared/biztime"
)

// Issue is the aggregate root for a reported test-automation failure. It
// owns the ordered set of generated test-case identifiers, the tag set, and
// the secondary testcase paths; release and platform are always derived from
// the primary path, never set independently.
type Issue struct {
	id                 uint
	title              string
	testcasePath       string
	severity           vo.Severity
	testCaseIDs        []string
	release            string
	platform           string
	build              string
	target             string
	description        string
	additionalComments string
	reporterName       string
	reviewerName       string
	status             vo.IssueStatus
	ccrNumber          string
	upvotes            int
	downvotes          int
	createdAt          time.Time
	updatedAt          time.Time
	tags               []string
	paths              []*TestcasePath
}

func NewIssue(
	title string,
	testcasePath string,
	severity vo.Severity,
	description string,
	reporterName string,
) (*Issue, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(testcasePath) == 0 {
		return nil, fmt.Errorf("testcase path is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(reporterName) == 0 {
		return nil, fmt.Errorf("reporter name is required")
	}

	release, platform := ParseTestcasePath(testcasePath)

	now := biztime.NowUTC()
	return &Issue{
		title:        title,
		testcasePath: testcasePath,
		severity:     severity,
		testCaseIDs:  []string{},
		release:      release,
		platform:     platform,
		description:  description,
		reporterName: reporterName,
		status:       vo.StatusOpen,
		createdAt:    now,
		updatedAt:    now,
		tags:         []string{},
		paths:        []*TestcasePath{},
	}, nil
}

func ReconstructIssue(
	id uint,
	title string,
	testcasePath string,
	severity vo.Severity,
	testCaseIDs []string,
	release string,
	platform string,
	build string,
	target string,
	description string,
	additionalComments string,
	reporterName string,
	reviewerName string,
	status vo.IssueStatus,
	ccrNumber string,
	upvotes int,
	downvotes int,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if upvotes < 0 || downvotes < 0 {
		return nil, fmt.Errorf("vote counters cannot be negative")
	}

	if testCaseIDs == nil {
		testCaseIDs = []string{}
	}

	return &Issue{
		id:                 id,
		title:              title,
		testcasePath:       testcasePath,
		severity:           severity,
		testCaseIDs:        testCaseIDs,
		release:            release,
		platform:           platform,
		build:              build,
		target:             target,
		description:        description,
		additionalComments: additionalComments,
		reporterName:       reporterName,
		reviewerName:       reviewerName,
		status:             status,
		ccrNumber:          ccrNumber,
		upvotes:            upvotes,
		downvotes:          downvotes,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		tags:               []string{},
		paths:              []*TestcasePath{},
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) TestcasePath() string {
	return i.testcasePath
}

func (i *Issue) Severity() vo.Severity {
	return i.severity
}

func (i *Issue) TestCaseIDs() []string {
	ids := make([]string, len(i.testCaseIDs))
	copy(ids, i.testCaseIDs)
	return ids
}

func (i *Issue) Release() string {
	return i.release
}

func (i *Issue) Platform() string {
	return i.platform
}

func (i *Issue) PlatformDisplay() string {
	if i.platform == "" {
		return ""
	}
	return PlatformDisplayName(i.platform)
}

func (i *Issue) Build() string {
	return i.build
}

func (i *Issue) Target() string {
	return i.target
}

func (i *Issue) Description() string {
	return i.description
}

func (i *Issue) AdditionalComments() string {
	return i.additionalComments
}

func (i *Issue) ReporterName() string {
	return i.reporterName
}

func (i *Issue) ReviewerName() string {
	return i.reviewerName
}

func (i *Issue) Status() vo.IssueStatus {
	return i.status
}

func (i *Issue) CCRNumber() string {
	return i.ccrNumber
}

func (i *Issue) Upvotes() int {
	return i.upvotes
}

func (i *Issue) Downvotes() int {
	return i.downvotes
}

// Score is the issue's vote score (upvotes minus downvotes).
func (i *Issue) Score() int {
	return i.upvotes - i.downvotes
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Issue) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Issue) Tags() []string {
	tags := make([]string, len(i.tags))
	copy(tags, i.tags)
	return tags
}

func (i *Issue) Paths() []*TestcasePath {
	paths := make([]*TestcasePath, len(i.paths))
	copy(paths, i.paths)
	return paths
}

// TestcaseCount counts the primary path plus every secondary path.
func (i *Issue) TestcaseCount() int {
	return 1 + len(i.paths)
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Issue) SetTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	i.title = title
	i.touch()
	return nil
}

// SetTestcasePath replaces the primary path and re-derives release and
// platform from it. The duplicate check against the issue's target is the
// caller's responsibility before invoking this.
func (i *Issue) SetTestcasePath(path string) error {
	if len(path) == 0 {
		return fmt.Errorf("testcase path cannot be empty")
	}
	i.testcasePath = path
	i.release, i.platform = ParseTestcasePath(path)
	i.touch()
	return nil
}

func (i *Issue) SetSeverity(severity vo.Severity) error {
	if !severity.IsValid() {
		return fmt.Errorf("invalid severity: %s", severity)
	}
	i.severity = severity
	i.touch()
	return nil
}

func (i *Issue) SetBuild(build string) {
	i.build = build
	i.touch()
}

func (i *Issue) SetTarget(target string) {
	i.target = target
	i.touch()
}

func (i *Issue) SetDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description cannot be empty")
	}
	i.description = description
	i.touch()
	return nil
}

func (i *Issue) SetAdditionalComments(comments string) {
	i.additionalComments = comments
	i.touch()
}

func (i *Issue) SetReporterName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("reporter name cannot be empty")
	}
	i.reporterName = name
	i.touch()
	return nil
}

func (i *Issue) AssignReviewer(name string) {
	i.reviewerName = name
	i.touch()
}

// AppendTestCaseID adds a generated identifier to the ordered set.
// Duplicates within one issue are rejected.
func (i *Issue) AppendTestCaseID(id string) error {
	if len(id) == 0 {
		return fmt.Errorf("test case ID cannot be empty")
	}
	for _, existing := range i.testCaseIDs {
		if existing == id {
			return fmt.Errorf("test case ID %s already present", id)
		}
	}
	i.testCaseIDs = append(i.testCaseIDs, id)
	i.touch()
	return nil
}

// ReplaceTestCaseIDs replaces the ordered identifier set.
func (i *Issue) ReplaceTestCaseIDs(ids []string) {
	replacement := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		replacement = append(replacement, id)
	}
	i.testCaseIDs = replacement
	i.touch()
}

// HasTag reports whether the issue already carries the named tag.
func (i *Issue) HasTag(name string) bool {
	for _, tag := range i.tags {
		if tag == name {
			return true
		}
	}
	return false
}

// AddTag appends a tag if not already present. Bucket auto-tagging is
// additive only: a stale bucket tag is never removed when the path changes.
func (i *Issue) AddTag(name string) {
	if name == "" || i.HasTag(name) {
		return
	}
	i.tags = append(i.tags, name)
	i.touch()
}

// ReplaceTags replaces the entire tag set.
func (i *Issue) ReplaceTags(names []string) {
	replacement := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		replacement = append(replacement, name)
	}
	i.tags = replacement
	i.touch()
}

// AttachPaths sets the loaded secondary paths on the aggregate.
func (i *Issue) AttachPaths(paths []*TestcasePath) {
	if paths == nil {
		paths = []*TestcasePath{}
	}
	i.paths = paths
}

// SetLoadedTags sets the loaded tag names without touching updatedAt.
// Used when reconstructing the aggregate from storage.
func (i *Issue) SetLoadedTags(names []string) {
	if names == nil {
		names = []string{}
	}
	i.tags = names
}

// SetLoadedTestCaseIDs sets the loaded identifier set without touching
// updatedAt. Used when reconstructing the aggregate from storage.
func (i *Issue) SetLoadedTestCaseIDs(ids []string) {
	if ids == nil {
		ids = []string{}
	}
	i.testCaseIDs = ids
}

// ChangeStatus applies an explicit status update through the lifecycle
// transition table.
func (i *Issue) ChangeStatus(newStatus vo.IssueStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if i.status == newStatus {
		return nil
	}

	if !i.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", i.status, newStatus)
	}

	i.status = newStatus
	i.touch()
	return nil
}

// MoveToCCR escalates the issue into the change-request process. Resolved
// issues are terminal with respect to CCR escalation.
func (i *Issue) MoveToCCR(ccrNumber string) error {
	if len(ccrNumber) == 0 {
		return fmt.Errorf("CCR number is required")
	}
	if i.status.IsResolved() {
		return fmt.Errorf("cannot move resolved issues to CCR")
	}

	i.status = vo.StatusCCR
	i.ccrNumber = ccrNumber
	i.touch()
	return nil
}

// MarkResolved forces the issue to resolved status. This is the automatic
// transition triggered by verifying a comment as the solution and bypasses
// the explicit transition table.
func (i *Issue) MarkResolved() {
	if i.status.IsResolved() {
		return
	}
	i.status = vo.StatusResolved
	i.touch()
}

func (i *Issue) Upvote() {
	i.upvotes++
	i.touch()
}

func (i *Issue) Downvote() {
	i.downvotes++
	i.touch()
}

func (i *Issue) Validate() error {
	if len(i.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(i.testcasePath) == 0 {
		return fmt.Errorf("testcase path is required")
	}
	if !i.severity.IsValid() {
		return fmt.Errorf("invalid severity")
	}
	if len(i.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(i.reporterName) == 0 {
		return fmt.Errorf("reporter name is required")
	}
	if !i.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if i.status.IsCCR() && len(i.ccrNumber) == 0 {
		return fmt.Errorf("CCR number is required when status is ccr")
	}
	if i.upvotes < 0 || i.downvotes < 0 {
		return fmt.Errorf("vote counters cannot be negative")
	}
	return nil
}

func (i *Issue) touch() {
	i.updatedAt = biztime.NowUTC()
}
