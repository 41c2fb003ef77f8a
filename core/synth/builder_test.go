package synth

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numberRe = regexp.MustCompile(`\d+`)

func TestBuild_Empty(t *testing.T) {
	assert.Equal(t, "", Build(0))
	assert.Equal(t, "", Section(0))
}

func TestBuild_Deterministic(t *testing.T) {
	for _, n := range []uint{1, 2, 18, 250} {
		assert.Equal(t, Build(n), Build(n), "n=%d", n)
	}
}

func TestBuildDefault(t *testing.T) {
	assert.Equal(t, Build(18), BuildDefault())
	assert.Equal(t, 18, Count(BuildDefault()))
}

func TestBuild_SectionCount(t *testing.T) {
	for _, n := range []uint{0, 1, 7, 18, 100} {
		assert.Equal(t, int(n), Count(Build(n)), "n=%d", n)
	}
}

func TestBuild_TwoSections(t *testing.T) {
	section := func(i int) string {
		return fmt.Sprintf("## Section %d\n\n"+
			"This section was generated to exercise long-document handling such as incremental parsing and virtualized scrolling.\n\n"+
			"- Alpha · Beta · Gamma\n\n"+
			"```js\n"+
			"const section = %d;\n"+
			"console.log(\"rendered section %d\");\n"+
			"```\n\n"+
			"---\n\n", i, i, i)
	}

	got := Build(2)
	require.Equal(t, section(1)+section(2), got)

	// a single blank line between the first divider and the second heading
	assert.Contains(t, got, "---\n\n## Section 2\n")
	assert.NotContains(t, got, "---\n\n\n")
	assert.True(t, strings.HasSuffix(got, "---\n\n"))
}

func TestBuild_IsConcatenationOfSections(t *testing.T) {
	var want strings.Builder
	for i := uint(1); i <= 12; i++ {
		want.WriteString(Section(i))
	}
	assert.Equal(t, want.String(), Build(12))
}

func TestBuild_IndexFidelity(t *testing.T) {
	const n = 25
	doc := Build(n)
	headings := HeadingPattern.FindAllStringSubmatchIndex(doc, -1)
	require.Len(t, headings, n)

	for i, loc := range headings {
		want := fmt.Sprint(i + 1)
		require.Equal(t, want, doc[loc[2]:loc[3]], "sections must be in ascending order")

		end := len(doc)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		block := doc[loc[0]:end]

		// every number in the section is its own index
		for _, num := range numberRe.FindAllString(block, -1) {
			assert.Equal(t, want, num, "section %d", i+1)
		}
		assert.Contains(t, block, "const section = "+want+";\n")
		assert.Contains(t, block, `console.log("rendered section `+want+`");`+"\n")
	}
}

func TestGrowHint(t *testing.T) {
	assert.Equal(t, 2*sectionSize(2), growHint(2))
	assert.GreaterOrEqual(t, growHint(18), len(BuildDefault()))

	for _, n := range []uint{math.MaxUint, math.MaxUint / 2, uint(math.MaxInt) + 1, 1 << 40} {
		got := growHint(n)
		assert.Positive(t, got, "n=%d", n)
		assert.LessOrEqual(t, got, maxGrowHint, "n=%d", n)
	}
}

func TestBuildInt(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		want    string
		wantErr bool
	}{
		{name: "zero", n: 0, want: ""},
		{name: "positive", n: 3, want: Build(3)},
		{name: "negative", n: -1, wantErr: true},
		{name: "very negative", n: -1 << 40, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildInt(tt.n)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSections)
				assert.Empty(t, got, "no partial output on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_Concurrent(t *testing.T) {
	want := Build(40)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Build(40))
		}()
	}
	wg.Wait()
}
