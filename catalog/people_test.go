package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eringen/showroom/cms"
)

func TestMembers(t *testing.T) {
	images := []cms.Image{
		{Src: "http://cms.test:6124/wp-content/ada.jpg", Alt: "Ada"},
		{Src: "/wp-content/b.jpg"},
		{Src: "https://elsewhere.org/c.jpg", Alt: "  "},
	}
	got := Members(images, "Master Designer", cms.NewRewriter("http://cms.test:6124"))
	want := []Member{
		{Name: "Ada", Title: "Master Designer", ImageURL: "/wp-content/ada.jpg"},
		{Name: "Visionary 2", Title: "Master Designer", ImageURL: "/wp-content/b.jpg"},
		{Name: "Visionary 3", Title: "Master Designer", ImageURL: "https://elsewhere.org/c.jpg"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Members mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitTeam(t *testing.T) {
	if _, _, ok := SplitTeam(nil); ok {
		t.Fatalf("empty team reported ok")
	}
	founder, core, ok := SplitTeam([]Member{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	if !ok || founder.Name != "A" || len(core) != 2 || core[0].Name != "B" {
		t.Fatalf("SplitTeam = %v %v %v", founder, core, ok)
	}
}

func TestNewCertificate(t *testing.T) {
	n := cms.Node{
		Title:            " Qing Vase ",
		Content:          `<p>Provenance <img src="http://cms.test:6124/v.jpg"></p><iframe src="x"></iframe>`,
		FeaturedImageURL: "http://cms.test:6124/wp-content/vase.jpg",
	}
	c := NewCertificate(" AB-1 ", n, cms.NewRewriter("http://cms.test:6124"))
	if c.Number != "AB-1" || c.Title != "Qing Vase" || c.ImageURL != "/wp-content/vase.jpg" {
		t.Fatalf("certificate = %+v", c)
	}
	if strings.Contains(c.Content, "iframe") || !strings.Contains(c.Content, `src="/v.jpg"`) {
		t.Fatalf("content = %s", c.Content)
	}

	bare := NewCertificate("x", cms.Node{}, nil)
	if bare.ImageURL != "" || bare.Content != "" {
		t.Fatalf("bare certificate = %+v", bare)
	}
}
