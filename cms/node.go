package cms

// Category is a taxonomy term attached to a post.
type Category struct {
	Name string
	Slug string
}

// Node is a post as returned by the CMS. Optional fields are left empty when
// the CMS omits them.
type Node struct {
	ID               string
	Title            string
	Slug             string
	Excerpt          string
	Content          string
	FeaturedImageURL string
	FeaturedImageAlt string
	Categories       []Category
}

// CategoryNames returns the node's category names in CMS order.
func (n Node) CategoryNames() []string {
	out := make([]string, 0, len(n.Categories))
	for _, c := range n.Categories {
		out = append(out, c.Name)
	}
	return out
}

// Wire shapes of the WPGraphQL connection types.

type postsData struct {
	Posts connection `json:"posts"`
}

type connection struct {
	Edges []struct {
		Node *wireNode `json:"node"`
	} `json:"edges"`
}

func (c connection) nodes() []Node {
	out := make([]Node, 0, len(c.Edges))
	for _, e := range c.Edges {
		if e.Node == nil {
			continue
		}
		out = append(out, e.Node.node())
	}
	return out
}

type wireNode struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	FeaturedImage *struct {
		Node *struct {
			SourceURL string `json:"sourceUrl"`
			AltText   string `json:"altText"`
		} `json:"node"`
	} `json:"featuredImage"`
	Categories *struct {
		Edges []struct {
			Node *struct {
				Name string `json:"name"`
				Slug string `json:"slug"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"categories"`
}

func (w *wireNode) node() Node {
	n := Node{
		ID:      w.ID,
		Title:   w.Title,
		Slug:    w.Slug,
		Excerpt: w.Excerpt,
		Content: w.Content,
	}
	if w.FeaturedImage != nil && w.FeaturedImage.Node != nil {
		n.FeaturedImageURL = w.FeaturedImage.Node.SourceURL
		n.FeaturedImageAlt = w.FeaturedImage.Node.AltText
	}
	if w.Categories != nil {
		for _, e := range w.Categories.Edges {
			if e.Node == nil {
				continue
			}
			n.Categories = append(n.Categories, Category{Name: e.Node.Name, Slug: e.Node.Slug})
		}
	}
	return n
}
