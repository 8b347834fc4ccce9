package service

import (
	"errors"
	"fmt"
	"sync"

	"numberhunt/internal/domain"
	"numberhunt/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrNoNumbers means nothing has been collected yet
	ErrNoNumbers = errors.New("no numbers collected yet")
	// ErrPhotoNotFound means the archive has no photo where one was expected
	ErrPhotoNotFound = errors.New("photo not found")
)

// Notifier broadcasts progress to the rest of the group
type Notifier interface {
	NotifyFound(submitterID int64, foundNumber, nextNumber int)
}

// CommitResult describes the outcome of a committed submission
type CommitResult struct {
	Number   int
	Next     int // current number after the commit
	Advanced bool
	Replaced bool
}

// CollectionService handles the counter, the photo archive and
// the commit of submissions
type CollectionService struct {
	counterRepo repository.CounterRepository
	photoRepo   repository.PhotoRepository
	notifier    Notifier
	logger      *zap.Logger

	// Serializes counter read-modify-write across commits
	commitMux sync.Mutex
}

// NewCollectionService creates a new collection service
func NewCollectionService(
	counterRepo repository.CounterRepository,
	photoRepo repository.PhotoRepository,
	notifier Notifier,
	logger *zap.Logger,
) *CollectionService {
	return &CollectionService{
		counterRepo: counterRepo,
		photoRepo:   photoRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// CurrentNumber returns the number the group is searching for now.
// A missing counter record is treated as a fresh start and reseeded with 1.
func (s *CollectionService) CurrentNumber() (int, error) {
	n, err := s.counterRepo.Get()
	if err != nil {
		if !errors.Is(err, repository.ErrCounterUnavailable) {
			return 0, err
		}
		s.logger.Warn("Counter record unavailable, reseeding", zap.Error(err))
		if err := s.counterRepo.Set(1); err != nil {
			return 0, fmt.Errorf("reseed counter: %w", err)
		}
		return 1, nil
	}
	return n, nil
}

// LastNumber returns the most recently found number's photo
func (s *CollectionService) LastNumber() (*domain.Photo, error) {
	current, err := s.CurrentNumber()
	if err != nil {
		return nil, err
	}
	if current == 1 {
		return nil, ErrNoNumbers
	}

	last := current - 1
	if !s.photoRepo.Exists(last) {
		return nil, fmt.Errorf("%w: %s", ErrPhotoNotFound, domain.FormatNumber(last))
	}

	return &domain.Photo{Number: last, Path: s.photoRepo.Path(last)}, nil
}

// AllNumbers returns every archived photo in ascending order
func (s *CollectionService) AllNumbers() ([]domain.Photo, error) {
	numbers, err := s.photoRepo.ListAll()
	if err != nil {
		return nil, err
	}

	photos := make([]domain.Photo, 0, len(numbers))
	for _, n := range numbers {
		photos = append(photos, domain.Photo{Number: n, Path: s.photoRepo.Path(n)})
	}
	return photos, nil
}

// Commit archives the submitted photo and, when the submitted number is the
// one currently sought, advances the counter and notifies the group.
// Out-of-order numbers are archived without advancing.
func (s *CollectionService) Commit(submitterID int64, number int, photo []byte) (*CommitResult, error) {
	s.commitMux.Lock()
	defer s.commitMux.Unlock()

	replaced := s.photoRepo.Exists(number)
	if err := s.photoRepo.Put(number, photo); err != nil {
		return nil, fmt.Errorf("store photo %s: %w", domain.FormatNumber(number), err)
	}

	current, err := s.CurrentNumber()
	if err != nil {
		return nil, err
	}

	result := &CommitResult{Number: number, Next: current, Replaced: replaced}
	if number == current {
		next := current + 1
		if err := s.counterRepo.Set(next); err != nil {
			return nil, fmt.Errorf("advance counter: %w", err)
		}
		result.Advanced = true
		result.Next = next

		s.logger.Info("Counter advanced",
			zap.Int("found", number),
			zap.Int("next", next),
			zap.Int64("user_id", submitterID),
		)
		s.notifier.NotifyFound(submitterID, number, next)
	}

	return result, nil
}
