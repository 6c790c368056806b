package services

import (
	"context"
	"errors"
	"strings"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"

	"github.com/google/uuid"
)

// reviewPageSize caps how many reviews a product page shows.
const reviewPageSize = 50

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func (s *ReviewService) GetProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	return s.reviewRepo.GetByProductID(ctx, productID, reviewPageSize)
}

// Rating carries no binding constraint: out-of-range values, zero
// included, are clamped by the service rather than rejected.
type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SubmitReview upserts the user's review of the product. Rating is
// clamped to [1, 5] rather than rejected.
func (s *ReviewService) SubmitReview(ctx context.Context, userID, productID string, req *SubmitReviewRequest) (*models.Review, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	user, err := s.userRepo.GetByID(ctx, userUUID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	rating := req.Rating
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    userID,
		UserName:  user.Name,
		Rating:    rating,
		Comment:   strings.TrimSpace(req.Comment),
	}

	if err := s.reviewRepo.Upsert(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}
