package search

import (
	"math"
	"sort"

	"github.com/avolkov/search-server/model"
)

// RelevanceEpsilon is the threshold below which two relevance values are
// considered equal and rating decides the order. Floating-point relevance
// sums accumulated in different term orders can differ by rounding noise
// smaller than any meaningful ranking difference.
const RelevanceEpsilon = 1e-6

// rankDocuments orders docs by relevance descending, breaking near-ties by
// rating descending. The sort is stable so full ties keep their incoming
// order.
func rankDocuments(docs []model.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		if math.Abs(docs[i].Relevance-docs[j].Relevance) < RelevanceEpsilon {
			return docs[i].Rating > docs[j].Rating
		}
		return docs[i].Relevance > docs[j].Relevance
	})
}
