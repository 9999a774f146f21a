// ABOUTME: History and feedback services handle the persisted side of the app
// ABOUTME: Provides paging rules for admin listings and validation for user feedback

package history

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"news-summarizer-api/core/domain"
	"news-summarizer-api/core/errors"
	"news-summarizer-api/core/interfaces"
)

const (
	// DefaultPageLimit is used when a listing asks for no limit
	DefaultPageLimit = 100
	// MaxPageLimit caps a single listing
	MaxPageLimit = 1000
	// MaxFeedbackLength bounds the free-text feedback a user can submit
	MaxFeedbackLength = 5000
)

// NormalizePage applies the default and maximum limit and clamps a negative offset
func NormalizePage(page domain.Page) domain.Page {
	if page.Limit <= 0 {
		page.Limit = DefaultPageLimit
	}
	if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return page
}

// HistoryService lists persisted analyses
type HistoryService struct {
	store interfaces.HistoryStore
}

var _ interfaces.HistoryService = (*HistoryService)(nil)

// NewHistoryService creates a new history service instance
func NewHistoryService(store interfaces.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns history newest first
func (s *HistoryService) List(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
	records, err := s.store.ListHistory(ctx, NormalizePage(page))
	if err != nil {
		return nil, errors.WrapError(err, "list history")
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	return records, nil
}

// FeedbackService validates and stores user feedback
type FeedbackService struct {
	store interfaces.FeedbackStore
	now   func() time.Time
}

var _ interfaces.FeedbackService = (*FeedbackService)(nil)

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(store interfaces.FeedbackStore) *FeedbackService {
	return &FeedbackService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates the feedback, assigns its id and timestamp, and appends it
func (s *FeedbackService) Submit(ctx context.Context, feedback domain.FeedbackRecord) (*domain.FeedbackRecord, error) {
	feedback.Title = strings.TrimSpace(feedback.Title)
	feedback.FakeNewsLabel = strings.TrimSpace(feedback.FakeNewsLabel)
	feedback.UserFeedback = strings.TrimSpace(feedback.UserFeedback)

	if feedback.UserFeedback == "" {
		return nil, &errors.ValidationError{Field: "user_feedback", Message: "must not be empty"}
	}
	if domain.CharCount(feedback.UserFeedback) > MaxFeedbackLength {
		return nil, &errors.ValidationError{Field: "user_feedback", Message: "is too long"}
	}

	feedback.ID = uuid.New().String()
	feedback.CreatedAt = s.now()

	if err := s.store.SaveFeedback(ctx, feedback); err != nil {
		return nil, errors.WrapError(err, "save feedback")
	}

	return &feedback, nil
}

// List returns feedback newest first
func (s *FeedbackService) List(ctx context.Context, page domain.Page) ([]domain.FeedbackRecord, error) {
	records, err := s.store.ListFeedback(ctx, NormalizePage(page))
	if err != nil {
		return nil, errors.WrapError(err, "list feedback")
	}
	if records == nil {
		records = []domain.FeedbackRecord{}
	}
	return records, nil
}
