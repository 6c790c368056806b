package services

import (
	"context"
	"errors"
	"testing"

	"golang-jewelry-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeReviewRepo struct {
	upserted []*models.Review
}

func (f *fakeReviewRepo) Upsert(_ context.Context, review *models.Review) error {
	f.upserted = append(f.upserted, review)
	return nil
}

func (f *fakeReviewRepo) GetByProductID(context.Context, string, int) ([]models.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) Delete(context.Context, primitive.ObjectID) error { return nil }

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("record not found")
}

func (f *fakeUserRepo) Update(context.Context, *models.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, uuid.UUID) error    { return nil }

func TestSubmitReviewClampsRating(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Name: "Priya"}
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*models.User{user.ID: user}}

	cases := []struct {
		name   string
		rating int
		want   int
	}{
		{"below range", -3, 1},
		{"zero", 0, 1},
		{"in range", 4, 4},
		{"above range", 9, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviewRepo := &fakeReviewRepo{}
			svc := NewReviewService(reviewRepo, userRepo)

			review, err := svc.SubmitReview(ctx, user.ID.String(), "prod-1", &SubmitReviewRequest{
				Rating:  tc.rating,
				Comment: "  lovely craftsmanship  ",
			})
			require.NoError(t, err)

			assert.Equal(t, tc.want, review.Rating)
			assert.Equal(t, "lovely craftsmanship", review.Comment)
			assert.Equal(t, "Priya", review.UserName)
			require.Len(t, reviewRepo.upserted, 1)
		})
	}
}

func TestSubmitReviewUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(&fakeReviewRepo{}, &fakeUserRepo{users: map[uuid.UUID]*models.User{}})

	_, err := svc.SubmitReview(ctx, uuid.NewString(), "prod-1", &SubmitReviewRequest{Rating: 5})
	assert.Error(t, err)

	_, err = svc.SubmitReview(ctx, "not-a-uuid", "prod-1", &SubmitReviewRequest{Rating: 5})
	assert.Error(t, err)
}
