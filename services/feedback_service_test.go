package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"diag-hub/domain"
	"diag-hub/errors"
	"diag-hub/mocks"
	"diag-hub/moderation"
	"diag-hub/services"
)

func newFeedbackService(t *testing.T, logSink, notifySink *mocks.MockFeedbackSink, words []string) *services.FeedbackService {
	t.Helper()
	moderator, err := moderation.NewModerator(words, '*')
	require.NoError(t, err)
	return services.NewFeedbackService(logSink, notifySink, moderator, slog.Default())
}

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("should deliver exactly once to each sink", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logSink := mocks.NewMockFeedbackSink(ctrl)
		notifySink := mocks.NewMockFeedbackSink(ctrl)
		logSink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		notifySink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		svc := newFeedbackService(t, logSink, notifySink, nil)
		record := domain.NewFeedbackRecord("Ana", "a@x.com", 5, "great")

		outcome, err := svc.Submit(ctx, record)

		req.NoError(err)
		req.True(outcome.Logged)
		req.True(outcome.Notified)
		req.True(outcome.Accepted())
	})

	t.Run("should report partial success when the notification sink is unreachable", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logSink := mocks.NewMockFeedbackSink(ctrl)
		notifySink := mocks.NewMockFeedbackSink(ctrl)
		logSink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		notifySink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.ErrNotificationSink).Times(1)

		svc := newFeedbackService(t, logSink, notifySink, nil)

		outcome, err := svc.Submit(ctx, domain.NewFeedbackRecord("Ana", "a@x.com", 5, "great"))

		req.NoError(err)
		req.True(outcome.Logged)
		req.False(outcome.Notified)
		req.ErrorIs(outcome.NotifyErr, errors.ErrNotificationSink)
		req.True(outcome.Accepted())
	})

	t.Run("should still notify when the log sink fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logSink := mocks.NewMockFeedbackSink(ctrl)
		notifySink := mocks.NewMockFeedbackSink(ctrl)
		logSink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.ErrLogSink).Times(1)
		notifySink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		svc := newFeedbackService(t, logSink, notifySink, nil)

		outcome, err := svc.Submit(ctx, domain.NewFeedbackRecord("Ana", "a@x.com", 5, "great"))

		req.NoError(err)
		req.False(outcome.Logged)
		req.True(outcome.Notified)
		req.False(outcome.Accepted())
	})

	t.Run("should reject an invalid record before touching any sink", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logSink := mocks.NewMockFeedbackSink(ctrl)
		notifySink := mocks.NewMockFeedbackSink(ctrl)
		logSink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Times(0)
		notifySink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Times(0)

		svc := newFeedbackService(t, logSink, notifySink, nil)

		for _, record := range []domain.FeedbackRecord{
			domain.NewFeedbackRecord("Ana", "not-an-email", 5, "great"),
			domain.NewFeedbackRecord("Ana", "a@x.com", 0, "great"),
			domain.NewFeedbackRecord("Ana", "a@x.com", 6, "great"),
			domain.NewFeedbackRecord("", "a@x.com", 3, "great"),
			domain.NewFeedbackRecord("Ana", "a@x.com", 3, ""),
		} {
			_, err := svc.Submit(ctx, record)
			req.ErrorIs(err, errors.ErrInvalidFeedback)
		}
	})

	t.Run("should accept identical resubmissions as distinct records", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logSink := mocks.NewMockFeedbackSink(ctrl)
		notifySink := mocks.NewMockFeedbackSink(ctrl)
		logSink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		notifySink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		svc := newFeedbackService(t, logSink, notifySink, nil)

		for range 2 {
			outcome, err := svc.Submit(ctx, domain.NewFeedbackRecord("Ana", "a@x.com", 5, "great"))
			req.NoError(err)
			req.True(outcome.Logged)
		}
	})

	t.Run("should mask censored words before delivery", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var delivered domain.FeedbackRecord
		logSink := mocks.NewMockFeedbackSink(ctrl)
		notifySink := mocks.NewMockFeedbackSink(ctrl)
		logSink.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record domain.FeedbackRecord) error {
				delivered = record
				return nil
			})
		notifySink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)

		svc := newFeedbackService(t, logSink, notifySink, []string{"garbage"})

		_, err := svc.Submit(ctx, domain.NewFeedbackRecord("Ana", "a@x.com", 1, "this tool is garbage"))

		req.NoError(err)
		req.Equal("this tool is *******", delivered.Message)
	})
}
