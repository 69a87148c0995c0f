package usecase

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SummaryGenerator produces a professional-summary paragraph from a
// comma-separated keyword string. It is an interface so a real generative
// text collaborator can replace the template substitution without touching
// callers.
type SummaryGenerator interface {
	Generate(keywords string) string
}

// summaryTemplates are the five fixed summary shapes. {keywords} is replaced
// with the cleaned keyword list; {years} with a random experience figure or
// the word "extensive".
var summaryTemplates = []string{
	"Dynamic and results-oriented professional with expertise in {keywords}. Proven track record of delivering innovative solutions and driving team success. Committed to continuous learning and professional growth in a fast-paced environment.",
	"Experienced specialist skilled in {keywords}, bringing {years} years of hands-on experience to complex challenges. Adept at collaborating with cross-functional teams to achieve organizational objectives. Passionate about leveraging technology to create meaningful impact.",
	"Accomplished professional with strong background in {keywords}. Demonstrated ability to lead projects from conception to successful completion. Focused on building scalable solutions and fostering positive work environments.",
	"Innovative thinker and problem-solver with proficiency in {keywords}. Excel at analyzing complex problems and implementing effective strategies. Dedicated to staying current with industry trends and best practices.",
	"Results-driven professional with comprehensive experience in {keywords}. Skilled at managing multiple priorities while maintaining high standards of quality. Committed to contributing to organizational success through strategic thinking and collaborative efforts.",
}

// TemplateSummaryGenerator picks one of the five templates uniformly at
// random and substitutes the keyword list.
type TemplateSummaryGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewTemplateSummaryGenerator() *TemplateSummaryGenerator {
	return &TemplateSummaryGenerator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSummaryGenerator returns a generator with a deterministic
// selection sequence.
func NewSeededSummaryGenerator(seed int64) *TemplateSummaryGenerator {
	return &TemplateSummaryGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *TemplateSummaryGenerator) Generate(keywords string) string {
	cleaned := []string{}
	for _, k := range strings.Split(keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}

	g.mu.Lock()
	tpl := summaryTemplates[g.rng.Intn(len(summaryTemplates))]
	useYears := g.rng.Float64() > 0.5
	years := g.rng.Intn(10) + 3
	g.mu.Unlock()

	out := strings.Replace(tpl, "{keywords}", strings.Join(cleaned, ", "), 1)
	if useYears {
		out = strings.Replace(out, "{years}", strconv.Itoa(years), 1)
	} else {
		out = strings.Replace(out, "{years} years of", "extensive", 1)
	}
	return out
}
