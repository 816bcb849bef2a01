package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nourishcoach/internal/kvstore"
)

func newTestService() Service {
	svc := NewService(kvstore.NewMemory()).(*service)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestListPostsSeedsNewestFirst(t *testing.T) {
	svc := newTestService()

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, len(seedPosts))

	assert.Equal(t, "fat-loss-mistakes", posts[0].Slug)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
	}
	for _, p := range posts {
		assert.NotEmpty(t, p.Excerpt)
		assert.GreaterOrEqual(t, p.ReadingMins, 1)
	}
}

func TestAddPostDerivesFields(t *testing.T) {
	svc := newTestService()

	post, err := svc.AddPost(context.Background(), PostRequest{
		Title: "Hydration & Performance",
		Body:  "Drink water before you feel thirsty. Two to three litres spread through the day works for most adults.",
	})
	require.NoError(t, err)

	assert.Equal(t, "hydration-performance", post.Slug)
	assert.Equal(t, 1, post.ReadingMins)
	assert.Equal(t, Excerpt(post.Body), post.Excerpt)

	// The new post lists first, ahead of the seeds.
	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hydration-performance", posts[0].Slug)

	got, err := svc.GetPost(context.Background(), "hydration-performance")
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
}

func TestAddPostDuplicateSlug(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddPost(context.Background(), PostRequest{Title: "Mindful Eating 101", Body: "x"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestAddPostInvalidTitle(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddPost(context.Background(), PostRequest{Title: "!!!", Body: "x"})
	assert.ErrorIs(t, err, ErrInvalidTitle)
}

func TestGetPostNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetPost(context.Background(), "no-such-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	slug := seedPosts[0].Slug

	flags, err := svc.Flags(ctx, slug)
	require.NoError(t, err)
	assert.False(t, flags.Liked)
	assert.False(t, flags.Saved)

	liked, err := svc.ToggleLike(ctx, slug)
	require.NoError(t, err)
	assert.True(t, liked)

	saved, err := svc.ToggleSave(ctx, slug)
	require.NoError(t, err)
	assert.True(t, saved)

	flags, err = svc.Flags(ctx, slug)
	require.NoError(t, err)
	assert.True(t, flags.Liked)
	assert.True(t, flags.Saved)

	liked, err = svc.ToggleLike(ctx, slug)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleFlagsIndependentPerSlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, seedPosts[0].Slug)
	require.NoError(t, err)

	flags, err := svc.Flags(ctx, seedPosts[1].Slug)
	require.NoError(t, err)
	assert.False(t, flags.Liked)
}

func TestToggleUnknownPost(t *testing.T) {
	svc := newTestService()

	_, err := svc.ToggleLike(context.Background(), "no-such-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListTestimonialsSeedsAndAverage(t *testing.T) {
	svc := newTestService()

	list, err := svc.ListTestimonials(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, len(seedTestimonials), list.Count)
	assert.Equal(t, 5.0, list.AverageScore)
	assert.Equal(t, "Daxesh Patel", list.Testimonials[0].Name)
}

func TestListTestimonialsFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddTestimonial(ctx, TestimonialRequest{
		Name: "Test Client", Text: "Good but strict.", Rating: 3, Source: "Website",
	})
	require.NoError(t, err)

	// min_rating filters out the 3-star review.
	list, err := svc.ListTestimonials(ctx, 4, "")
	require.NoError(t, err)
	assert.Equal(t, len(seedTestimonials), list.Count)
	assert.Equal(t, 5.0, list.AverageScore)

	// Source filter is case-insensitive.
	list, err = svc.ListTestimonials(ctx, 0, "website")
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, 4.0, list.AverageScore)

	// Newly added entries list first.
	list, err = svc.ListTestimonials(ctx, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "Test Client", list.Testimonials[0].Name)
	assert.Equal(t, 4.6, list.AverageScore)
}

func TestListTestimonialsEmptyFilterDefaultsAverage(t *testing.T) {
	svc := newTestService()

	list, err := svc.ListTestimonials(context.Background(), 0, "Twitter")
	require.NoError(t, err)
	assert.Equal(t, 0, list.Count)
	assert.Equal(t, 5.0, list.AverageScore)
}

func TestAddTestimonialRatingBounds(t *testing.T) {
	svc := newTestService()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.AddTestimonial(context.Background(), TestimonialRequest{
			Name: "X", Text: "Y", Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestCommentsNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	slug := seedPosts[0].Slug

	comments, err := svc.Comments(ctx, slug)
	require.NoError(t, err)
	assert.Empty(t, comments)

	_, err = svc.AddComment(ctx, slug, CommentRequest{Name: "Asha", Text: "Very helpful."})
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, slug, CommentRequest{Name: "Ravi", Text: "Trying this today."})
	require.NoError(t, err)

	comments, err = svc.Comments(ctx, slug)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Ravi", comments[0].Name)
	assert.Equal(t, "Asha", comments[1].Name)
}

func TestCommentsScopedToPost(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddComment(ctx, seedPosts[0].Slug, CommentRequest{Name: "A", Text: "B"})
	require.NoError(t, err)

	comments, err := svc.Comments(ctx, seedPosts[1].Slug)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentsUnknownPost(t *testing.T) {
	svc := newTestService()

	_, err := svc.Comments(context.Background(), "no-such-post")
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.AddComment(context.Background(), "no-such-post", CommentRequest{Name: "A", Text: "B"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}
