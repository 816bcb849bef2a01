package content

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"nourishcoach/internal/kvstore"
	"nourishcoach/internal/metrics"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrDuplicateSlug = errors.New("a post with this slug already exists")
	ErrInvalidTitle  = errors.New("title must contain letters or digits")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type Service interface {
	ListPosts(ctx context.Context) ([]Post, error)
	GetPost(ctx context.Context, slug string) (*Post, error)
	AddPost(ctx context.Context, req PostRequest) (*Post, error)

	Flags(ctx context.Context, slug string) (PostFlags, error)
	ToggleLike(ctx context.Context, slug string) (bool, error)
	ToggleSave(ctx context.Context, slug string) (bool, error)

	ListTestimonials(ctx context.Context, minRating int, source string) (TestimonialList, error)
	AddTestimonial(ctx context.Context, req TestimonialRequest) (*Testimonial, error)

	Comments(ctx context.Context, slug string) ([]Comment, error)
	AddComment(ctx context.Context, slug string, req CommentRequest) (*Comment, error)
}

type service struct {
	store kvstore.Store
	now   func() time.Time
}

func NewService(store kvstore.Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) loadList(ctx context.Context, key string, out interface{}) error {
	data, found, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (s *service) saveList(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, key, data)
}

// ListPosts merges stored posts with the seed posts, newest first.
func (s *service) ListPosts(ctx context.Context) ([]Post, error) {
	var stored []Post
	if err := s.loadList(ctx, postsKey, &stored); err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(stored)+len(seedPosts))
	posts = append(posts, stored...)
	for _, p := range seedPosts {
		p.Excerpt = Excerpt(p.Body)
		p.ReadingMins = ReadingMinutes(p.Body)
		posts = append(posts, p)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *service) GetPost(ctx context.Context, slug string) (*Post, error) {
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}
	return nil, ErrPostNotFound
}

func (s *service) AddPost(ctx context.Context, req PostRequest) (*Post, error) {
	slug := Slugify(req.Title)
	if slug == "" {
		return nil, ErrInvalidTitle
	}
	if existing, err := s.GetPost(ctx, slug); err == nil && existing != nil {
		return nil, ErrDuplicateSlug
	} else if err != nil && !errors.Is(err, ErrPostNotFound) {
		return nil, err
	}

	post := Post{
		Slug:        slug,
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		Category:    req.Category,
		Tags:        req.Tags,
		Body:        req.Body,
		Excerpt:     Excerpt(req.Body),
		ReadingMins: ReadingMinutes(req.Body),
		CreatedAt:   s.now(),
	}

	var stored []Post
	if err := s.loadList(ctx, postsKey, &stored); err != nil {
		return nil, err
	}
	stored = append([]Post{post}, stored...)
	if err := s.saveList(ctx, postsKey, stored); err != nil {
		return nil, err
	}

	metrics.RecordContentWrite("post")
	return &post, nil
}

func (s *service) loadFlags(ctx context.Context) (flagState, error) {
	state := flagState{Likes: map[string]bool{}, Saves: map[string]bool{}}
	data, found, err := s.store.Get(ctx, flagsKey)
	if err != nil {
		return state, err
	}
	if found {
		// Corrupt state degrades to empty rather than failing the toggle.
		_ = json.Unmarshal(data, &state)
		if state.Likes == nil {
			state.Likes = map[string]bool{}
		}
		if state.Saves == nil {
			state.Saves = map[string]bool{}
		}
	}
	return state, nil
}

func (s *service) Flags(ctx context.Context, slug string) (PostFlags, error) {
	if _, err := s.GetPost(ctx, slug); err != nil {
		return PostFlags{}, err
	}
	state, err := s.loadFlags(ctx)
	if err != nil {
		return PostFlags{}, err
	}
	return PostFlags{Liked: state.Likes[slug], Saved: state.Saves[slug]}, nil
}

func (s *service) toggle(ctx context.Context, slug string, pick func(flagState) map[string]bool) (bool, error) {
	if _, err := s.GetPost(ctx, slug); err != nil {
		return false, err
	}
	state, err := s.loadFlags(ctx)
	if err != nil {
		return false, err
	}

	m := pick(state)
	m[slug] = !m[slug]
	if err := s.saveList(ctx, flagsKey, state); err != nil {
		return false, err
	}

	metrics.RecordContentWrite("flag")
	return m[slug], nil
}

func (s *service) ToggleLike(ctx context.Context, slug string) (bool, error) {
	return s.toggle(ctx, slug, func(st flagState) map[string]bool { return st.Likes })
}

func (s *service) ToggleSave(ctx context.Context, slug string) (bool, error) {
	return s.toggle(ctx, slug, func(st flagState) map[string]bool { return st.Saves })
}

// ListTestimonials merges stored and seed testimonials, newest first,
// filtered by minimum rating and source. The average covers the filtered
// set, rounded to one decimal, defaulting to 5.0 when nothing matches.
func (s *service) ListTestimonials(ctx context.Context, minRating int, source string) (TestimonialList, error) {
	var stored []Testimonial
	if err := s.loadList(ctx, testimonialsKey, &stored); err != nil {
		return TestimonialList{}, err
	}

	all := make([]Testimonial, 0, len(stored)+len(seedTestimonials))
	all = append(all, stored...)
	all = append(all, seedTestimonials...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	filtered := make([]Testimonial, 0, len(all))
	sum := 0
	for _, t := range all {
		if t.Rating < minRating {
			continue
		}
		if source != "" && !strings.EqualFold(t.Source, source) {
			continue
		}
		filtered = append(filtered, t)
		sum += t.Rating
	}

	avg := 5.0
	if len(filtered) > 0 {
		avg = math.Round(float64(sum)/float64(len(filtered))*10) / 10
	}

	return TestimonialList{Testimonials: filtered, Count: len(filtered), AverageScore: avg}, nil
}

func (s *service) AddTestimonial(ctx context.Context, req TestimonialRequest) (*Testimonial, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	t := Testimonial{
		Name:      strings.TrimSpace(req.Name),
		Text:      strings.TrimSpace(req.Text),
		Rating:    req.Rating,
		Source:    req.Source,
		CreatedAt: s.now(),
	}

	var stored []Testimonial
	if err := s.loadList(ctx, testimonialsKey, &stored); err != nil {
		return nil, err
	}
	stored = append([]Testimonial{t}, stored...)
	if err := s.saveList(ctx, testimonialsKey, stored); err != nil {
		return nil, err
	}

	metrics.RecordContentWrite("testimonial")
	return &t, nil
}

func (s *service) Comments(ctx context.Context, slug string) ([]Comment, error) {
	if _, err := s.GetPost(ctx, slug); err != nil {
		return nil, err
	}
	var comments []Comment
	if err := s.loadList(ctx, commentsKey(slug), &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []Comment{}
	}
	return comments, nil
}

// AddComment prepends, so listings come back newest first without sorting.
func (s *service) AddComment(ctx context.Context, slug string, req CommentRequest) (*Comment, error) {
	if _, err := s.GetPost(ctx, slug); err != nil {
		return nil, err
	}

	c := Comment{
		Name:      strings.TrimSpace(req.Name),
		Text:      strings.TrimSpace(req.Text),
		CreatedAt: s.now(),
	}

	var comments []Comment
	if err := s.loadList(ctx, commentsKey(slug), &comments); err != nil {
		return nil, err
	}
	comments = append([]Comment{c}, comments...)
	if err := s.saveList(ctx, commentsKey(slug), comments); err != nil {
		return nil, err
	}

	metrics.RecordContentWrite("comment")
	return &c, nil
}
