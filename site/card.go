package site

import (
	"strings"

	"github.com/DeedleFake/folio/placeholder"
)

const postCard = `
    <li class="post-card">
      <h3><a href="/blog/{{slug}}/">{{title}}</a></h3>
      <p class="post-meta">{{formattedDate}}</p>
      <p class="post-description">{{description}}</p>
    </li>
  `

// NoPosts replaces the card list on the blog index when there are no
// posts.
const NoPosts = "<p>No posts yet.</p>"

// PostCard renders the summary card for p used on the home page and
// the blog index.
func PostCard(p Post) string {
	return placeholder.Render(postCard, placeholder.Data{
		"slug":          p.Slug,
		"title":         p.Title,
		"formattedDate": FormatDate(p.Date),
		"description":   p.Description,
	})
}

// PostCards renders a card for each post, separated by newlines.
func PostCards(posts []Post) string {
	cards := make([]string, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, PostCard(p))
	}
	return strings.Join(cards, "\n")
}
