package seed

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// categories are the fixed board game categories every seed run creates.
var categories = []domain.NewCategory{
	{Slug: "strategy", Description: "Strategy-focused board games that prioritise limited-randomness"},
	{Slug: "hidden-roles", Description: "One or more players around the table have a secret, and the rest of you need to figure out who!"},
	{Slug: "dexterity", Description: "Games involving physical skill, something like Gladiators for Meeples"},
	{Slug: "push-your-luck", Description: "Games that allow you to take bigger risks to achieve increased rewards"},
	{Slug: "roll-and-write", Description: "Roll some dice and write some numbers on paper"},
	{Slug: "deck-building", Description: "Games where players construct unique decks of cards"},
	{Slug: "engine-building", Description: "Games where players construct unique points-gaining engines"},
}

// Factory builds seed payloads from a gofakeit source.
type Factory struct {
	faker *gofakeit.Faker
	seen  map[string]struct{}
}

// NewFactory creates a Factory. A zero seed picks a random one.
func NewFactory(seed int64) *Factory {
	return &Factory{
		faker: gofakeit.New(seed),
		seen:  make(map[string]struct{}),
	}
}

// User returns a user with a username not returned before by this factory.
func (f *Factory) User() domain.User {
	username := strings.ToLower(f.faker.Username())
	for i := 2; ; i++ {
		if _, dup := f.seen[username]; !dup {
			break
		}
		username = fmt.Sprintf("%s%d", strings.ToLower(f.faker.Username()), i)
	}
	f.seen[username] = struct{}{}

	return domain.User{
		Username:  username,
		Name:      f.faker.Name(),
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
	}
}

// Review returns a review payload owned by owner in category. Roughly a
// third of the reviews omit the image so the column default is exercised.
func (f *Factory) Review(owner, category string) domain.NewReview {
	r := domain.NewReview{
		Owner:      owner,
		Title:      strings.TrimSuffix(f.faker.Sentence(3), "."),
		ReviewBody: f.faker.Paragraph(1, 3, 12, " "),
		Designer:   f.faker.FirstName() + " " + f.faker.LastName(),
		Category:   category,
	}
	if f.faker.IntRange(0, 2) > 0 {
		r.ReviewImgURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", f.faker.UUID())
	}
	return r
}

// Comment returns a comment payload by author.
func (f *Factory) Comment(author string) domain.NewComment {
	return domain.NewComment{
		Username: author,
		Body:     f.faker.Sentence(f.faker.IntRange(4, 16)),
	}
}

// Votes returns a vote delta in [lo, hi].
func (f *Factory) Votes(lo, hi int) int {
	return f.faker.IntRange(lo, hi)
}

// Pick returns a pseudo-random index in [0, n).
func (f *Factory) Pick(n int) int {
	return f.faker.IntRange(0, n-1)
}
