package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/domain/repository"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// ContentService serves the shared daily reads and scripture entries.
type ContentService struct {
	readRepo      repository.DailyReadRepository
	scriptureRepo repository.ScriptureRepository
}

func NewContentService(readRepo repository.DailyReadRepository, scriptureRepo repository.ScriptureRepository) *ContentService {
	return &ContentService{readRepo: readRepo, scriptureRepo: scriptureRepo}
}

// CreateRead publishes a daily reading entry.
func (s *ContentService) CreateRead(title, body, author string, publishedOn time.Time) (*entity.DailyRead, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: title and body are required", apperrors.ErrValidation)
	}
	if publishedOn.IsZero() {
		publishedOn = time.Now()
	}

	read := &entity.DailyRead{
		Title:       title,
		Body:        body,
		Author:      strings.TrimSpace(author),
		PublishedOn: publishedOn,
	}
	if err := s.readRepo.Create(read); err != nil {
		return nil, fmt.Errorf("failed to create daily read: %w", err)
	}
	return read, nil
}

// ListReads returns reading entries, newest first.
func (s *ContentService) ListReads(limit, offset int) ([]entity.DailyRead, error) {
	return s.readRepo.List(clampLimit(limit), offset)
}

// TodayRead returns the entry published today.
func (s *ContentService) TodayRead() (*entity.DailyRead, error) {
	return s.readRepo.GetByDate(time.Now())
}

// CreateScripture publishes a scripture entry.
func (s *ContentService) CreateScripture(reference, text, theme string) (*entity.Scripture, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" || strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: reference and text are required", apperrors.ErrValidation)
	}

	scripture := &entity.Scripture{
		Reference: reference,
		Text:      text,
		Theme:     strings.TrimSpace(theme),
	}
	if err := s.scriptureRepo.Create(scripture); err != nil {
		return nil, fmt.Errorf("failed to create scripture: %w", err)
	}
	return scripture, nil
}

// ListScriptures returns scripture entries.
func (s *ContentService) ListScriptures(limit, offset int) ([]entity.Scripture, error) {
	return s.scriptureRepo.List(clampLimit(limit), offset)
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
