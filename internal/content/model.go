// Package content serves the site's editorial surface: blog posts with
// per-reader like/save flags, client testimonials and per-post comments.
// Everything is stored as JSON through the kvstore layer.
package content

import (
	"math"
	"strings"
	"time"
	"unicode"
)

const (
	excerptRunes    = 160
	wordsPerMinute  = 200
	postsKey        = "content:posts"
	flagsKey        = "content:blog:flags"
	testimonialsKey = "content:testimonials"
	commentsKeyFmt  = "content:comments:"
)

type Post struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Body        string    `json:"body"`
	Excerpt     string    `json:"excerpt"`
	ReadingMins int       `json:"reading_mins"`
	CreatedAt   time.Time `json:"created_at"`
}

type PostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Body     string   `json:"body" binding:"required"`
}

// PostFlags is one reader's liked/saved state for a post.
type PostFlags struct {
	Liked bool `json:"liked"`
	Saved bool `json:"saved"`
}

type flagState struct {
	Likes map[string]bool `json:"likes"`
	Saves map[string]bool `json:"saves"`
}

type Testimonial struct {
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TestimonialRequest struct {
	Name   string `json:"name" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Source string `json:"source"`
}

type TestimonialList struct {
	Testimonials []Testimonial `json:"testimonials"`
	Count        int           `json:"count"`
	AverageScore float64       `json:"average_rating"`
}

type Comment struct {
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentRequest struct {
	Name string `json:"name" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// Slugify reduces a title to a URL-safe slug: lowercase, runs of
// non-alphanumerics collapse to a single dash.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Excerpt returns the first 160 runes of the body, whitespace-normalized.
func Excerpt(body string) string {
	text := strings.Join(strings.Fields(body), " ")
	runes := []rune(text)
	if len(runes) <= excerptRunes {
		return text
	}
	return string(runes[:excerptRunes])
}

// ReadingMinutes estimates reading time at 200 words per minute, never
// reporting less than one minute.
func ReadingMinutes(body string) int {
	words := len(strings.Fields(body))
	mins := int(math.Round(float64(words) / wordsPerMinute))
	if mins < 1 {
		mins = 1
	}
	return mins
}

func commentsKey(slug string) string {
	return commentsKeyFmt + slug
}
