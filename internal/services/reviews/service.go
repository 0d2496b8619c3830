package reviews

import (
	"context"
	"fmt"

	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/catalogue"
)

// Service records reviews against catalogue podcasts.
type Service struct {
	repo catalogue.Repository
}

// NewService creates a review service over the repository.
func NewService(repo catalogue.Repository) *Service {
	return &Service{repo: repo}
}

// AddReview validates the target podcast and user, constructs the review
// and stores it. A blank comment and an out-of-range rating are coerced at
// construction rather than rejected.
func (s *Service) AddReview(ctx context.Context, podcastID int, username, comment string, rating int) (*models.Review, error) {
	podcast, err := s.repo.GetPodcast(ctx, podcastID)
	if err != nil {
		return nil, fmt.Errorf("fetching podcast %d: %w", podcastID, err)
	}
	if podcast == nil {
		return nil, ErrNoSuchPodcast
	}

	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching user %q: %w", username, err)
	}
	if user == nil {
		return nil, ErrNoSuchUser
	}

	all, err := s.repo.GetAllReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting reviews: %w", err)
	}

	review, err := models.NewReview(len(all)+1, rating, comment, user, podcast)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddReview(ctx, review); err != nil {
		return nil, err
	}

	// Registration into both owning aggregates happens here, after the
	// store accepted the review, not as a construction side effect.
	podcast.AddReview(review)
	user.AddReview(review)
	return review, nil
}

// ReviewsForPodcast lists the reviews of one podcast alongside its average
// rating.
func (s *Service) ReviewsForPodcast(ctx context.Context, podcastID int) ([]*models.Review, string, error) {
	podcast, err := s.repo.GetPodcast(ctx, podcastID)
	if err != nil {
		return nil, "", fmt.Errorf("fetching podcast %d: %w", podcastID, err)
	}
	if podcast == nil {
		return nil, "", ErrNoSuchPodcast
	}

	reviews, err := s.repo.GetReviewsByPodcast(ctx, podcastID)
	if err != nil {
		return nil, "", err
	}
	average, err := s.repo.GetAverageRating(ctx, podcastID)
	if err != nil {
		return nil, "", err
	}
	return reviews, average, nil
}

// ReviewsByUser lists every review the named user has written.
func (s *Service) ReviewsByUser(ctx context.Context, username string) ([]*models.Review, error) {
	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching user %q: %w", username, err)
	}
	if user == nil {
		return nil, ErrNoSuchUser
	}
	return s.repo.GetUserReviews(ctx, username)
}
