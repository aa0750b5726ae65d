package domain

// Element is a single input line.
type Element struct {
	// Line is the 1-based line number in the input.
	Line int `json:"line"`

	// Text is the line content without its trailing newline.
	Text string `json:"text"`

	// Value is Text parsed as a number. Only set for numeric weighers.
	Value float64 `json:"value,omitempty"`
}

// Result is the outcome of splitting a list of elements.
type Result struct {
	Batches [][]Element `json:"batches"`
	Ignored []Element   `json:"ignored"`
}

// Count returns the number of elements placed in batches.
func (r Result) Count() int {
	n := 0
	for _, b := range r.Batches {
		n += len(b)
	}
	return n
}

// NonEmpty returns the number of batches holding at least one element.
func (r Result) NonEmpty() int {
	n := 0
	for _, b := range r.Batches {
		if len(b) > 0 {
			n++
		}
	}
	return n
}
