package surfapi

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// selectorID is the id of the beach <select> on the server's home page
const selectorID = "selectorPlaya"

var errNoSelector = errors.New("beach selector not found in page")

// parseCatalog extracts the beach options from the server page. Each
// <optgroup> label is the country of the options inside it.
func parseCatalog(r io.Reader) ([]models.BeachOption, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	sel := findByID(doc, selectorID)
	if sel == nil {
		return nil, errNoSelector
	}

	beaches := make([]models.BeachOption, 0)
	collectOptions(sel, "", &beaches)
	return beaches, nil
}

func collectOptions(n *html.Node, country models.Country, out *[]models.BeachOption) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "optgroup":
			collectOptions(c, models.Country(attr(c, "label")), out)
		case "option":
			name := strings.TrimSpace(textContent(c))
			id, ok := attrOK(c, "value")
			if !ok {
				// Browsers submit the text when value is absent
				id = name
			}
			*out = append(*out, models.BeachOption{ID: id, Name: name, Country: country})
		}
	}
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
