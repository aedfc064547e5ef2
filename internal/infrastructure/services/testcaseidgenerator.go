package services

import (
	"context"
	"fmt"
	"math/rand"

	"testertalk/internal/shared/biztime"
)

const (
	suffixAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength        = 4
	maxGenerateAttempts = 1000
)

// TestCaseIDChecker reports whether a candidate identifier is already
// claimed by any issue.
type TestCaseIDChecker interface {
	TestCaseIDExists(ctx context.Context, candidate string) (bool, error)
}

// TestCaseIDGenerator produces identifiers of the form TC-YYYYMMDD-XXXX
// where XXXX is a random suffix over uppercase letters and digits.
// Candidates already claimed by any issue are rejected and regenerated;
// the attempt bound is generous against the 36^4 suffix space.
type TestCaseIDGenerator struct {
	issues TestCaseIDChecker
}

func NewTestCaseIDGenerator(issues TestCaseIDChecker) *TestCaseIDGenerator {
	return &TestCaseIDGenerator{issues: issues}
}

func (g *TestCaseIDGenerator) Generate(ctx context.Context) (string, error) {
	dateStr := biztime.NowUTC().Format("20060102")

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		candidate := fmt.Sprintf("TC-%s-%s", dateStr, randomSuffix())

		exists, err := g.issues.TestCaseIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check test case ID: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not generate a unique test case ID after %d attempts", maxGenerateAttempts)
}

func randomSuffix() string {
	buf := make([]byte, suffixLength)
	for i := range buf {
		buf[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(buf)
}
