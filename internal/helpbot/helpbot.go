package helpbot

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Rule ties a set of trigger keywords to one canned answer. The first rule
// with any keyword contained in the question wins, so order the rule set
// from specific to general.
type Rule struct {
	Keywords []string
	Answer   string
}

type Bot struct {
	rules    []Rule
	fallback string
}

func New(rules []Rule, fallback string) *Bot {
	return &Bot{rules: rules, fallback: fallback}
}

// Answer matches the question against the rule set, case-insensitively.
func (b *Bot) Answer(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return b.fallback
	}

	for _, rule := range b.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(q, strings.ToLower(keyword)) {
				return rule.Answer
			}
		}
	}
	return b.fallback
}

func (b *Bot) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/help", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"answer": b.Answer(c.Query("q"))})
	})
}
