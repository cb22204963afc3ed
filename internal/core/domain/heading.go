package domain

// Heading is a markdown heading found in a post body.
// Headings are derived for table-of-contents consumers and never stored.
type Heading struct {
	// ID is the anchor identifier.
	ID string `json:"id"`

	// Text is the heading text.
	Text string `json:"text"`

	// Level is the heading level, 1 to 6.
	Level int `json:"level"`
}
