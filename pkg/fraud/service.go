package fraud

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/store"
)

// CasesCollection is the store name for fraud cases.
const CasesCollection = "fraud_cases"

// Service walks one call through the verification flow: load the
// customer's pending case, check the security answer, record the outcome.
// State is scoped to one call session.
type Service struct {
	store    store.Store
	logger   *slog.Logger
	now      func() time.Time
	current  *Case
	verified bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides the verification timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service over the given store.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the loaded case, if any.
func (s *Service) Current() (*Case, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// Verified reports whether the customer passed the security question.
func (s *Service) Verified() bool {
	return s.verified
}

// LoadCase finds the pending case for the named customer and makes it
// current. Name matching is case-insensitive.
func (s *Service) LoadCase(userName string) (*Case, error) {
	var cases []Case
	_ = s.store.LoadCollection(CasesCollection, &cases)

	for i := range cases {
		c := &cases[i]
		if strings.EqualFold(c.UserName, userName) && c.Status == StatusPendingReview {
			s.current = c
			s.verified = false
			s.logger.Info("case loaded", "case_id", c.ID, "customer", userName)
			return c, nil
		}
	}

	s.logger.Warn("no pending cases", "customer", userName)
	return nil, agent.NewCaseNotFoundError(userName)
}

// Verify checks the customer's answer against the loaded case's security
// answer, trimmed and case-folded. It requires a loaded case.
func (s *Service) Verify(answer string) (bool, error) {
	if s.current == nil {
		return false, agent.NewNotVerifiedError("No case loaded.")
	}

	expected := strings.ToLower(strings.TrimSpace(s.current.SecurityAnswer))
	provided := strings.ToLower(strings.TrimSpace(answer))
	s.verified = expected == provided

	if s.verified {
		s.logger.Info("customer verified", "case_id", s.current.ID)
	} else {
		s.logger.Warn("verification failed", "case_id", s.current.ID)
	}
	return s.verified, nil
}

// UpdateStatus records the call's outcome on the loaded case and persists
// the full collection, stamping the verification time.
func (s *Service) UpdateStatus(status, outcome string) error {
	if s.current == nil {
		return agent.NewNotVerifiedError("No case to update.")
	}

	var cases []Case
	_ = s.store.LoadCollection(CasesCollection, &cases)

	for i := range cases {
		if cases[i].ID == s.current.ID {
			cases[i].Status = status
			cases[i].Outcome = outcome
			cases[i].VerificationTimestamp = s.now().Format(time.RFC3339)
			s.current = &cases[i]
			break
		}
	}

	if err := s.store.SaveCollection(CasesCollection, cases); err != nil {
		s.logger.Error("case update not persisted", "case_id", s.current.ID, "error", err)
		return err
	}

	s.logger.Info("case updated", "case_id", s.current.ID, "status", status)
	return nil
}

// TransactionDetails formats the loaded case's transaction for reading
// back to a verified customer.
func (s *Service) TransactionDetails() string {
	c := s.current
	if c == nil {
		return ""
	}
	return fmt.Sprintf(
		"Amount: %.0f %s. Merchant: %s. Time: %s. Location: %s. Card ending: %s.",
		c.TransactionAmount, c.TransactionCurrency, c.TransactionName,
		c.TransactionTime, c.TransactionLocation, c.CardEnding,
	)
}
