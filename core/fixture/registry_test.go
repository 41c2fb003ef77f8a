package fixture

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/gaurav-prasanna/mdfixtures/core/mdscan"
	"github.com/gaurav-prasanna/mdfixtures/core/toc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_StableOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	assert.Equal(t, []Name{Showcase, Streaming, Navigation}, Names())
	for i, f := range all {
		assert.Equal(t, string(Names()[i]), f.Name)
	}
}

func TestAccessors(t *testing.T) {
	tests := []struct {
		name Name
		md   string
	}{
		{name: Showcase, md: ShowcaseMarkdown()},
		{name: Streaming, md: StreamingMarkdown()},
		{name: Navigation, md: NavigationMarkdown()},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			f, ok := Get(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.md, f.Content)
			assert.NotEmpty(t, strings.TrimSpace(f.Content))
			assert.NotEmpty(t, f.Title)
			assert.NotEmpty(t, f.Features)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, ok := Get("nope")
	assert.False(t, ok)
}

func TestParseName(t *testing.T) {
	name, err := ParseName("navigation")
	require.NoError(t, err)
	assert.Equal(t, Navigation, name)

	_, err = ParseName("feature showcase")
	require.ErrorIs(t, err, ErrUnknownFixture)
}

func TestFixture_FeaturesAreCopies(t *testing.T) {
	f, _ := Get(Showcase)
	f.Features[0] = "tampered"

	again, _ := Get(Showcase)
	assert.Equal(t, core.FeatureBold, again.Features[0])
}

func TestShowcase_Markup(t *testing.T) {
	md := ShowcaseMarkdown()

	checks := []struct {
		name string
		re   string
	}{
		{name: "bold", re: `\*\*[^*\s][^*]*\*\*`},
		{name: "italic", re: `(^|[^*])\*[^*\s][^*]*\*([^*]|$)`},
		{name: "strikethrough", re: `~~[^~]+~~`},
		{name: "inline code", re: "`[^`\n]+`"},
		{name: "bare url", re: `(^|\s)https?://\S+`},
		{name: "bare email", re: `(^|\s)[\w.+-]+@[\w-]+\.[\w.]+`},
		{name: "blockquote", re: `(?m)^> `},
		{name: "checked task", re: `(?m)^- \[x\] `},
		{name: "unchecked task", re: `(?m)^- \[ \] `},
		{name: "table delimiter", re: `(?m)^\|[ :|-]+\|$`},
		{name: "fenced code with language", re: "(?m)^```[a-z]+$"},
		{name: "image", re: `!\[[^\]]*\]\(https?://`},
		{name: "inline math", re: `[^$]\$[^$\s][^$\n]*\$[^$]`},
		{name: "block math", re: `(?m)^\$\$$`},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			assert.Regexp(t, regexp.MustCompile(c.re), md)
		})
	}

	// a table header plus at least two data rows
	rows := regexp.MustCompile(`(?m)^\|.*\|$`).FindAllString(md, -1)
	assert.GreaterOrEqual(t, len(rows), 4)
}

func TestStreaming_Shape(t *testing.T) {
	md := StreamingMarkdown()
	fences := mdscan.Fences(md)

	langs := make(map[string]bool)
	for _, f := range fences {
		require.NotEmpty(t, f.Lang)
		langs[f.Lang] = true
	}
	assert.GreaterOrEqual(t, len(langs), 2)

	levels := make(map[int]bool)
	for _, h := range mdscan.Headings(md) {
		levels[h.Level] = true
	}
	assert.True(t, levels[2] && levels[3], "headings and sub-headings")

	paragraphs := 0
	for _, block := range strings.Split(md, "\n\n") {
		if line := strings.TrimSpace(block); line != "" && !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "```") {
			paragraphs++
		}
	}
	assert.GreaterOrEqual(t, paragraphs, 8)
}

func TestNavigation_Tree(t *testing.T) {
	root := toc.FromMarkdown(NavigationMarkdown())

	assert.GreaterOrEqual(t, len(root.Children), 4)
	assert.GreaterOrEqual(t, root.Depth(), 3)
	for _, chapter := range root.Children {
		require.GreaterOrEqual(t, len(chapter.Children), 2, chapter.Heading.Text)
		for _, section := range chapter.Children {
			assert.GreaterOrEqual(t, len(section.Children), 2, section.Heading.Text)
		}
	}
}

func TestFixtures_ConcurrentReads(t *testing.T) {
	want := All()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, All())
		}()
	}
	wg.Wait()
}
