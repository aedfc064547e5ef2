package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "testertalk/internal/shared/config"
)

// ReviewerNotifier emails a bucket reviewer when an issue lands in their
// bucket. Delivery is best effort; issue creation never fails on email
// problems.
type ReviewerNotifier interface {
	NotifyIssueAssigned(to, reviewerName, issueTitle, issueURL string) error
}

type SMTPReviewerNotifier struct {
	cfg    *sharedConfig.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPReviewerNotifier(cfg *sharedConfig.EmailConfig) *SMTPReviewerNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &SMTPReviewerNotifier{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (s *SMTPReviewerNotifier) NotifyIssueAssigned(to, reviewerName, issueTitle, issueURL string) error {
	subject := fmt.Sprintf("New issue assigned: %s", issueTitle)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>A new issue was reported in your bucket and assigned to you for review:</p>
			<p><a href="%s">%s</a></p>
		</body>
		</html>
	`, reviewerName, issueURL, issueTitle)

	plainBody := fmt.Sprintf(`Hi %s,

A new issue was reported in your bucket and assigned to you for review:

%s
%s
`, reviewerName, issueTitle, issueURL)

	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPReviewerNotifier) send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// NoopReviewerNotifier drops notifications. Used when email is disabled.
type NoopReviewerNotifier struct{}

func NewNoopReviewerNotifier() *NoopReviewerNotifier {
	return &NoopReviewerNotifier{}
}

func (n *NoopReviewerNotifier) NotifyIssueAssigned(to, reviewerName, issueTitle, issueURL string) error {
	return nil
}
