package index

// PostingList maps a document id to the term-frequency weight of one term
// within that document. Weights accumulate one step (1 / number of indexed
// tokens in the document) per occurrence, so for any document with at least
// one indexed token the weights of all its terms sum to 1.0.
type PostingList map[int]float64
