// Package brand holds the brand profiles the site can be rendered as. A
// profile carries everything that differs between the sites: copy, nav,
// hero slides and the CMS categories each listing is built from.
package brand

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eringen/showroom/catalog"
)

// NavItem is a link in the navigation bar.
type NavItem struct {
	Label string
	Path  string
}

// Slide is a hero slider frame.
type Slide struct {
	Image    string
	Title    string
	Subtitle string
}

// Listing describes a product or project grid fed by one CMS category.
type Listing struct {
	Title    string
	Intro    string
	Category string
	Count    int
	// Exclude lists container category names never shown as filters.
	Exclude          []string
	CollectionFormat string
	Designer         string
}

// Rules returns the mapping rules for the listing.
func (l Listing) Rules(rw catalog.URLRewriter) catalog.Rules {
	return catalog.Rules{
		Exclude:          l.Exclude,
		CollectionFormat: l.CollectionFormat,
		Designer:         l.Designer,
		Rewrite:          rw,
	}
}

// Designer is an entry in the collection page's designer accordion.
type Designer struct {
	Name  string
	Image string
}

// Team describes where the leadership page gets its people.
type Team struct {
	Heading string
	// GallerySlug names a post whose images are the team. Empty means the
	// fallback members are always used.
	GallerySlug string
	MemberTitle string
	Fallback    []catalog.Member
	NoBio       string
}

// Certificates configures the certificate lookup, for brands that issue them.
type Certificates struct {
	Heading  string
	Intro    string
	Category string
}

// ContactLine is one labelled contact detail.
type ContactLine struct {
	Label string
	Value string
}

// Contact is the content of the contact page.
type Contact struct {
	Heading string
	Lines   []ContactLine
	Form    bool
}

// Brand is a complete site profile.
type Brand struct {
	Key     string
	Name    string
	Tagline string
	// Locale is a BCP 47 tag used for user-facing messages.
	Locale    string
	Nav       []NavItem
	GateImage string
	Slides    []Slide
	// Intro and About are markdown.
	Intro        string
	About        string
	Showcase     []string
	Collection   Listing
	Projects     *Listing
	Designers    []Designer
	Team         Team
	Certificates *Certificates
	Contact      Contact
	Footer       string
}

// Validate reports the first structural problem with b.
func (b Brand) Validate() error {
	switch {
	case b.Key == "":
		return fmt.Errorf("brand: missing key")
	case b.Name == "":
		return fmt.Errorf("brand %s: missing name", b.Key)
	case len(b.Nav) == 0:
		return fmt.Errorf("brand %s: empty nav", b.Key)
	case b.Collection.Category == "":
		return fmt.Errorf("brand %s: collection has no category", b.Key)
	case b.Projects != nil && b.Projects.Category == "":
		return fmt.Errorf("brand %s: projects has no category", b.Key)
	case b.Certificates != nil && b.Certificates.Category == "":
		return fmt.Errorf("brand %s: certificates have no category", b.Key)
	}
	for _, n := range b.Nav {
		if !strings.HasPrefix(n.Path, "/") {
			return fmt.Errorf("brand %s: nav path %q is not absolute", b.Key, n.Path)
		}
	}
	return nil
}

// HasPath reports whether the nav links to path.
func (b Brand) HasPath(path string) bool {
	for _, n := range b.Nav {
		if n.Path == path {
			return true
		}
	}
	return false
}

// DesignerNames returns the accordion's designer names in order.
func (b Brand) DesignerNames() []string {
	out := make([]string, 0, len(b.Designers))
	for _, d := range b.Designers {
		out = append(out, d.Name)
	}
	return out
}

var registry = map[string]Brand{}

func register(b Brand) {
	if err := b.Validate(); err != nil {
		panic(err)
	}
	registry[b.Key] = b
}

// Lookup returns the preset with the given key.
func Lookup(key string) (Brand, bool) {
	b, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	return b, ok
}

// Keys returns the preset keys, sorted.
func Keys() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
