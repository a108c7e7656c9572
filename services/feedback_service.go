//go:generate go run go.uber.org/mock/mockgen -source=feedback_service.go -destination=../mocks/mock_feedback_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"diag-hub/contract"
	"diag-hub/domain"
	"diag-hub/errors"
	"diag-hub/moderation"
)

// SubmissionOutcome reports each sink independently so the caller can
// render partial success ("saved but notification failed") instead of a
// single boolean.
type SubmissionOutcome struct {
	Logged    bool
	Notified  bool
	LogErr    error
	NotifyErr error
}

// Accepted reports whether at least the durable log sink took the record.
func (o SubmissionOutcome) Accepted() bool {
	return o.Logged
}

type IFeedbackService interface {
	Submit(ctx context.Context, record domain.FeedbackRecord) (SubmissionOutcome, error)
}

// FeedbackService fans each record out to the durable log sink and the
// notification sink. The sinks are independent: a failure in one never
// rolls back or blocks the other. Resubmission is always allowed; identical
// records are accepted as distinct rows.
type FeedbackService struct {
	logSink    contract.FeedbackSink
	notifySink contract.FeedbackSink
	moderator  moderation.Moderator
	validate   *validator.Validate
	log        *slog.Logger
}

func NewFeedbackService(
	logSink contract.FeedbackSink,
	notifySink contract.FeedbackSink,
	moderator moderation.Moderator,
	log *slog.Logger,
) *FeedbackService {
	return &FeedbackService{
		logSink:    logSink,
		notifySink: notifySink,
		moderator:  moderator,
		validate:   validator.New(),
		log:        log,
	}
}

// Submit validates and moderates the record, then delivers it to both
// sinks concurrently. A validation failure rejects the submission before
// any sink is touched.
func (s *FeedbackService) Submit(ctx context.Context, record domain.FeedbackRecord) (SubmissionOutcome, error) {
	if err := s.validate.Struct(record); err != nil {
		return SubmissionOutcome{}, fmt.Errorf("%w: %v", errors.ErrInvalidFeedback, err)
	}

	censored, found := s.moderator.Censor(record.Message)
	if len(found) > 0 {
		s.log.Info("Feedback message censored", "id", record.ID, "words", len(found))
		record.Message = censored
	}

	var (
		wg      sync.WaitGroup
		outcome SubmissionOutcome
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.logSink.Deliver(ctx, record); err != nil {
			s.log.Error("Log sink delivery failed", "id", record.ID, "error", err)
			outcome.LogErr = err
			return
		}
		outcome.Logged = true
	}()
	go func() {
		defer wg.Done()
		if err := s.notifySink.Deliver(ctx, record); err != nil {
			s.log.Warn("Notification sink delivery failed", "id", record.ID, "error", err)
			outcome.NotifyErr = err
			return
		}
		outcome.Notified = true
	}()
	wg.Wait()

	s.log.Info("Feedback submission processed",
		"id", record.ID, "lang", moderation.DetectLanguage(record.Message),
		"logged", outcome.Logged, "notified", outcome.Notified)
	return outcome, nil
}
