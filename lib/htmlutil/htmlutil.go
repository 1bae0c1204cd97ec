package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// Text returns the trimmed, whitespace-collapsed text of a selection.
func Text(sel *goquery.Selection) string {
	text := removeNonPrintable(sel.Text())
	text = strings.Trim(text, " \t\n")
	return innerWhitespace.ReplaceAllString(text, " ")
}

// Digits keeps only the digit and decimal point characters of a string,
// the NRL match centre wraps most stat values in descriptive text.
func Digits(s string) string {
	out := strings.Builder{}
	for _, c := range s {
		if unicode.IsDigit(c) || c == '.' {
			out.WriteRune(c)
		}
	}
	return out.String()
}
