// Package post turns GitHub issue bodies into blog post data.
//
// An issue body is accepted in one of three formats, tried in order:
//
//  1. Front-matter: a leading YAML block delimited by "---" lines.
//  2. Issue form: "### Slug", "### Language", "### Description",
//     "### Cover Image" and "### Content" sections, as written by
//     GitHub issue forms.
//  3. Raw: anything else. The body is used verbatim.
//
// The first format that matches wins. Extraction never fails: a body that
// matches nothing is simply a raw post.
//
// Older posts keep every translation in one body, separated by
// "<!-- lang:xx -->" markers. [Normaliser] resolves those per requested
// locale, while newer posts declare a single language and are filtered
// by it.
package post
