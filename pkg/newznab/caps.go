package newznab

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
)

// Caps describes what an indexer supports.
type Caps struct {
	Title      string
	Version    string
	MaxLimit   int
	Searching  map[string][]string // search type -> supported params, available types only
	Categories []Category
}

// Category is a top-level category with its subcategories.
type Category struct {
	ID      int
	Name    string
	Subcats []Category
}

// SupportsSearch reports whether the indexer offers the search type
// ("search", "tv-search", "movie-search").
func (c *Caps) SupportsSearch(kind string) bool {
	_, ok := c.Searching[kind]
	return ok
}

// CategoryIDs lists every category and subcategory id, parents first.
func (c *Caps) CategoryIDs() []int {
	var ids []int
	for _, cat := range c.Categories {
		ids = append(ids, cat.ID)
		for _, sub := range cat.Subcats {
			ids = append(ids, sub.ID)
		}
	}
	return ids
}

type capsDoc struct {
	XMLName xml.Name `xml:"caps"`
	Server  struct {
		Title   string `xml:"title,attr"`
		Version string `xml:"version,attr"`
	} `xml:"server"`
	Limits struct {
		Max int `xml:"max,attr"`
	} `xml:"limits"`
	Searching struct {
		Modes []struct {
			XMLName         xml.Name
			Available       string `xml:"available,attr"`
			SupportedParams string `xml:"supportedParams,attr"`
		} `xml:",any"`
	} `xml:"searching"`
	Categories []categoryDoc `xml:"categories>category"`
}

type categoryDoc struct {
	ID      int           `xml:"id,attr"`
	Name    string        `xml:"name,attr"`
	Subcats []categoryDoc `xml:"subcat"`
}

func (d categoryDoc) category() Category {
	c := Category{ID: d.ID, Name: d.Name}
	for _, s := range d.Subcats {
		c.Subcats = append(c.Subcats, s.category())
	}
	return c
}

// Caps fetches the indexer capabilities. It doubles as a credentials check.
func (c *Client) Caps(ctx context.Context) (*Caps, error) {
	body, err := c.get(ctx, url.Values{"t": {"caps"}})
	if err != nil {
		return nil, err
	}

	var doc capsDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse caps: %w", err)
	}

	caps := &Caps{
		Title:     doc.Server.Title,
		Version:   doc.Server.Version,
		MaxLimit:  doc.Limits.Max,
		Searching: make(map[string][]string),
	}
	for _, m := range doc.Searching.Modes {
		if m.Available != "yes" {
			continue
		}
		var params []string
		for _, p := range strings.Split(m.SupportedParams, ",") {
			if p = strings.TrimSpace(p); p != "" {
				params = append(params, p)
			}
		}
		caps.Searching[m.XMLName.Local] = params
	}
	for _, cat := range doc.Categories {
		caps.Categories = append(caps.Categories, cat.category())
	}
	return caps, nil
}
