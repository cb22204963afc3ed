package post

// FirstImageURL returns the URL of the first image in a markdown body,
// written either as markdown or as an <img> tag. It returns "" when the
// body has no image.
func FirstImageURL(body string) string {
	md := markdownImageURL.FindStringSubmatchIndex(body)
	html := htmlImageURL.FindStringSubmatchIndex(body)

	switch {
	case md == nil && html == nil:
		return ""
	case html == nil || (md != nil && md[0] < html[0]):
		return body[md[2]:md[3]]
	default:
		return body[html[2]:html[3]]
	}
}
