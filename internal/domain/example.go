package domain

// Example is one stored template example with its embedding.
// Identity is the example text: re-seeding the same content overwrites.
type Example struct {
	TemplateID int
	Content    string
	Vector     []float32
}

// ExampleMatch is one similarity-search hit against the stored examples.
type ExampleMatch struct {
	TemplateID int
	Similarity float64
	Content    string
}
