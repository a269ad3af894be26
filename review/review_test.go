package review

import (
	"context"
	"testing"

	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview_Validate(t *testing.T) {
	tests := []struct {
		name    string
		review  Review
		wantErr error
	}{
		{
			name:   "valid review",
			review: Review{CustomerName: "Ahmad", Content: "Great work", Rating: 5},
		},
		{
			name:   "lowest rating",
			review: Review{CustomerName: "Ahmad", Content: "Meh", Rating: 1},
		},
		{
			name:    "rating zero",
			review:  Review{CustomerName: "Ahmad", Content: "Great work", Rating: 0},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "rating six",
			review:  Review{CustomerName: "Ahmad", Content: "Great work", Rating: 6},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "missing customer name",
			review:  Review{Content: "Great work", Rating: 5},
			wantErr: ErrInvalidCustomerName,
		},
		{
			name:    "missing content",
			review:  Review{CustomerName: "Ahmad", Rating: 5},
			wantErr: ErrInvalidContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.review.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSQLStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &Review{})
	store := NewSQLStore(db, logger.NewTestLogger())
	ctx := context.Background()

	r := &Review{CustomerName: "Ahmad", Content: "Great work", Rating: 5}
	require.NoError(t, store.Create(ctx, r))
	assert.NotZero(t, r.ID)

	assert.ErrorIs(t, store.Create(ctx, &Review{CustomerName: "x", Content: "y", Rating: 9}), ErrInvalidRating)

	reviews, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ahmad", reviews[0].CustomerName)
	assert.Equal(t, 5, reviews[0].Rating)

	require.NoError(t, store.Delete(ctx, r.ID))
	assert.ErrorIs(t, store.Delete(ctx, r.ID), ErrReviewNotFound)

	reviews, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
