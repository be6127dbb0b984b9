// Package markdown turns GitHub comment markdown into the plain prose that
// language detection and sentiment scoring should see.
package markdown

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	// @user and #123 references carry no language signal
	mentionPattern = regexp.MustCompile(`(^|\s)[@#][\p{L}\p{N}_\-/]+`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// PlainText keeps the prose of a comment. Code blocks, inline code, images,
// HTML and quoted replies are dropped; link text is kept without its target.
func PlainText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := md.Parse([]byte(input))

	var sb strings.Builder
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.CodeBlock, blackfriday.Code, blackfriday.HTMLBlock,
			blackfriday.HTMLSpan, blackfriday.Image, blackfriday.BlockQuote:
			return blackfriday.SkipChildren
		case blackfriday.Text:
			if entering {
				sb.Write(node.Literal)
			}
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			sb.WriteByte(' ')
		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableCell:
			if !entering {
				sb.WriteByte(' ')
			}
		}
		return blackfriday.GoToNext
	})

	text := RemoveLinks(sb.String())
	text = mentionPattern.ReplaceAllString(text, "$1")
	return strings.Join(strings.Fields(text), " ")
}
