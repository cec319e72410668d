package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsAreValid(t *testing.T) {
	require.Equal(t, []string{CasaItalia, Foreverwell, HCFurniture}, Keys())
	for _, key := range Keys() {
		b, ok := Lookup(key)
		require.True(t, ok, key)
		assert.NoError(t, b.Validate(), key)
		assert.True(t, b.HasPath("/"), "%s has no home link", key)
		assert.NotEmpty(t, b.Slides, key)
		assert.Greater(t, b.Collection.Count, 0, key)
	}
}

func TestLookupNormalizesKey(t *testing.T) {
	b, ok := Lookup("  Casa-Italia ")
	require.True(t, ok)
	assert.Equal(t, "Casa Italia", b.Name)

	_, ok = Lookup("unknown")
	assert.False(t, ok)
}

func TestOnlyForeverwellIssuesCertificates(t *testing.T) {
	for _, key := range Keys() {
		b, _ := Lookup(key)
		assert.Equal(t, key == Foreverwell, b.Certificates != nil, key)
		assert.Equal(t, b.Certificates != nil, b.HasPath("/certificate/"), key)
	}
}

func TestValidate(t *testing.T) {
	good, _ := Lookup(HCFurniture)
	tests := []struct {
		name   string
		mutate func(*Brand)
	}{
		{"no key", func(b *Brand) { b.Key = "" }},
		{"no name", func(b *Brand) { b.Name = "" }},
		{"no nav", func(b *Brand) { b.Nav = nil }},
		{"relative nav", func(b *Brand) { b.Nav = []NavItem{{"Home", "home"}} }},
		{"no collection category", func(b *Brand) { b.Collection.Category = "" }},
		{"empty projects", func(b *Brand) { b.Projects = &Listing{} }},
		{"empty certificates", func(b *Brand) { b.Certificates = &Certificates{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := good
			tt.mutate(&b)
			assert.Error(t, b.Validate())
		})
	}
}

func TestListingRules(t *testing.T) {
	b, _ := Lookup(CasaItalia)
	r := b.Collection.Rules(nil)
	assert.Equal(t, "Casa Italia", r.Designer)
	assert.Equal(t, "The %s Collection", r.CollectionFormat)
	assert.Equal(t, []string{"Alessandro Mendini", "Patricia Urquiola", "Piero Lissoni", "Antonio Citterio", "Rodolfo Dordoni"}, b.DesignerNames())
}
