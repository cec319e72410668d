package catalog

import (
	"fmt"
	"strings"

	"github.com/eringen/showroom/cms"
)

// Member is a person on the leadership page.
type Member struct {
	Name     string
	Title    string
	ImageURL string
	Bio      []string
}

// Members turns the images of a gallery post into team members. The alt
// text names the member; images without one become "Visionary N".
func Members(images []cms.Image, title string, rw URLRewriter) []Member {
	if rw == nil {
		rw = identity{}
	}
	out := make([]Member, 0, len(images))
	for i, img := range images {
		name := strings.TrimSpace(img.Alt)
		if name == "" {
			name = fmt.Sprintf("Visionary %d", i+1)
		}
		out = append(out, Member{
			Name:     name,
			Title:    title,
			ImageURL: imageURL(img.Src, rw),
		})
	}
	return out
}

// SplitTeam separates the founder, the first member, from the core team.
// ok is false when members is empty.
func SplitTeam(members []Member) (founder Member, core []Member, ok bool) {
	if len(members) == 0 {
		return Member{}, nil, false
	}
	return members[0], members[1:], true
}

// Certificate is a certificate of authenticity found by number.
type Certificate struct {
	Number   string
	Title    string
	ImageURL string
	// Content is sanitized HTML.
	Content string
}

// NewCertificate maps the certificate post n found for number.
func NewCertificate(number string, n cms.Node, rw URLRewriter) Certificate {
	if rw == nil {
		rw = identity{}
	}
	c := Certificate{
		Number:  strings.TrimSpace(number),
		Title:   strings.TrimSpace(n.Title),
		Content: RichContent(rw.HTML(n.Content)),
	}
	if n.FeaturedImageURL != "" {
		c.ImageURL = rw.URL(n.FeaturedImageURL)
	}
	return c
}
