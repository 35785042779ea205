// Package assistant backs the storefront's advisor panel. The shipped
// implementations do no inference: the advisor picks one of four
// pre-written answers at random and the recommender echoes the head of the
// catalog. Both sit behind interfaces so a real strategy can be swapped in.
package assistant

import (
	"math/rand"
	"strings"
	"time"

	"github.com/talipby/koroglu-site/internal/domain"
)

// Advisor produces a free-text answer for a shopper's question.
type Advisor interface {
	Advise(query string) string
}

// Recommender selects products to surface alongside the answer.
type Recommender interface {
	Recommend(products []domain.Product, query string) []domain.Product
}

// DefaultResponses are the canned advisor answers.
var DefaultResponses = []string{
	"Protein açısından zengin ürünler için: Badem, Ceviz ve Fıstık türlerini öneririm. Bu ürünler besleyici değeri yüksek ve toptan fiyatları uygun.",
	"Kış ayları için: Kuru meyve karışımları ve vitamin deposu olan kuru incir, kayısı tercih edilebilir.",
	"Kahvaltılık için: Bal ile karıştırılabilen ceviz içi ve badem ideal seçeneklerdir.",
	"Çerezlik ürünler: Tuzlu ay çekirdeği, leblebi ve tuzlu fıstık popüler seçeneklerdir.",
}

// Canned answers every non-empty query with a randomly chosen response.
type Canned struct {
	responses []string
	rng       *rand.Rand
}

// NewCanned builds a Canned advisor. rng drives the selection so tests can
// pin it; responses defaults to DefaultResponses when empty and a nil rng to
// a time-seeded source.
func NewCanned(responses []string, rng *rand.Rand) *Canned {
	if len(responses) == 0 {
		responses = DefaultResponses
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Canned{responses: responses, rng: rng}
}

func (c *Canned) Advise(query string) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}
	return c.responses[c.rng.Intn(len(c.responses))]
}

// HeadRecommender returns the first N products regardless of the query.
type HeadRecommender struct {
	N int
}

func (h HeadRecommender) Recommend(products []domain.Product, _ string) []domain.Product {
	n := h.N
	if n <= 0 {
		n = 3
	}
	if n > len(products) {
		n = len(products)
	}
	out := make([]domain.Product, n)
	copy(out, products[:n])
	return out
}
