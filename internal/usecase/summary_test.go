package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSummaryContainsKeywords(t *testing.T) {
	g := NewSeededSummaryGenerator(1)

	out := g.Generate("Go, distributed systems")

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Go, distributed systems")
	assert.NotContains(t, out, "{keywords}")
	assert.NotContains(t, out, "{years}")
}

func TestGenerateSummaryMatchesOneTemplate(t *testing.T) {
	g := NewSeededSummaryGenerator(42)

	out := g.Generate("Go")

	// the output must be exactly one of the five templates with the
	// placeholders substituted
	matches := 0
	for _, tpl := range summaryTemplates {
		prefix := tpl[:strings.Index(tpl, "{keywords}")]
		if strings.HasPrefix(out, prefix) {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestGenerateSummaryCleansKeywordList(t *testing.T) {
	g := NewSeededSummaryGenerator(7)

	out := g.Generate("  Go ,  , Postgres,")

	assert.Contains(t, out, "Go, Postgres")
	assert.NotContains(t, out, " ,")
}

func TestGenerateSummaryYearsOrExtensive(t *testing.T) {
	// the years template must always resolve its placeholder, either to a
	// 3-12 figure or to the word "extensive"
	for seed := int64(0); seed < 50; seed++ {
		g := NewSeededSummaryGenerator(seed)
		out := g.Generate("Go")
		assert.NotContains(t, out, "{years}", "seed %d", seed)
		if strings.Contains(out, "hands-on experience") {
			ok := strings.Contains(out, "extensive hands-on experience") ||
				strings.Contains(out, "years of hands-on experience")
			assert.True(t, ok, "seed %d: %s", seed, out)
		}
	}
}

func TestGenerateSummaryDeterministicWithSeed(t *testing.T) {
	a := NewSeededSummaryGenerator(99).Generate("Go")
	b := NewSeededSummaryGenerator(99).Generate("Go")
	assert.Equal(t, a, b)
}
