package content

import "time"

func seedTime(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// seedPosts ship with the site so the blog is never empty. Reader-submitted
// posts are stored separately and merged in on listing.
var seedPosts = []Post{
	{
		Slug:     "balanced-diet-plate",
		Title:    "How to Build a Balanced Diet Plate",
		Author:   "Clinic Team",
		Category: "Diet",
		Tags:     []string{"macros", "meal-planning", "nutrition"},
		Body: "Half veggies and fruit, quarter protein, quarter carbs. Add a thumb of healthy fats. " +
			"Protein: eggs, paneer, chicken, tofu. Carbs: rice, roti, millets. Fats: ghee, olive oil, nuts.",
		CreatedAt: seedTime("2025-06-10"),
	},
	{
		Slug:     "fat-loss-mistakes",
		Title:    "7 Fat-Loss Mistakes Sabotaging Your Progress",
		Author:   "Clinic Team",
		Category: "Weight Loss",
		Tags:     []string{"calories", "habits", "mindset"},
		Body: "Drinking calories, guessing portions, too little protein, under 7 hours of sleep, " +
			"weekend wipe-outs, no step goal. Fix these and the scale will move.",
		CreatedAt: seedTime("2025-08-01"),
	},
	{
		Slug:     "protein-for-vegetarians",
		Title:    "High-Protein Diet for Vegetarians",
		Author:   "Dietitian Team",
		Category: "Diet",
		Tags:     []string{"protein", "vegetarian", "indian"},
		Body: "You can hit 1.6 to 2.2 g/kg with Indian staples. Paneer, curd, lentils, soy. " +
			"Spread protein across 3 to 5 meals for better muscle protein synthesis.",
		CreatedAt: seedTime("2025-07-12"),
	},
	{
		Slug:      "mindful-eating-101",
		Title:     "Mindful Eating 101",
		Author:    "Clinic Team",
		Category:  "Mindful Eating",
		Tags:      []string{"habits", "mindfulness"},
		Body:      "Use hunger and fullness scores from 1 to 10, remove distractions, savor each bite.",
		CreatedAt: seedTime("2025-03-05"),
	},
}

var seedTestimonials = []Testimonial{
	{
		Name:      "Daxesh Patel",
		Text:      "Excellent service and helpful doctors and staff. Strongly recommend.",
		Rating:    5,
		Source:    "Google",
		CreatedAt: seedTime("2025-07-10"),
	},
	{
		Name:      "Devang Vegad",
		Text:      "Cholesterol and weight back to normal in a month. Diet was simple and practical.",
		Rating:    5,
		Source:    "Google",
		CreatedAt: seedTime("2025-06-22"),
	},
	{
		Name:      "Chavada Mayur",
		Text:      "Lost 5 kg with great inch loss and improved gut health.",
		Rating:    5,
		Source:    "Website",
		CreatedAt: seedTime("2025-05-02"),
	},
	{
		Name:      "Nayana Vadsak",
		Text:      "Program kept me motivated and consistent without guilt.",
		Rating:    5,
		Source:    "In-Clinic",
		CreatedAt: seedTime("2025-04-11"),
	},
}
