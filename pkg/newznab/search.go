package newznab

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Release is one search result.
type Release struct {
	Title       string
	GUID        string
	DownloadURL string
	Size        int64
	PublishDate time.Time
	Categories  []int
	Seeders     int // torznab only
	Indexer     string
}

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title     string `xml:"title"`
	GUID      string `xml:"guid"`
	Link      string `xml:"link"`
	Size      int64  `xml:"size"`
	PubDate   string `xml:"pubDate"`
	Enclosure struct {
		URL    string `xml:"url,attr"`
		Length int64  `xml:"length,attr"`
	} `xml:"enclosure"`
	Attrs []rssAttr `xml:"attr"`
}

type rssAttr struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

var pubDateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// Search runs a free-text search limited to categories, returning at most
// limit results (0 uses the indexer default).
func (c *Client) Search(ctx context.Context, query string, categories []int, limit int) ([]Release, error) {
	params := url.Values{"t": {"search"}}
	if query != "" {
		params.Set("q", query)
	}
	if len(categories) > 0 {
		cats := make([]string, len(categories))
		for i, cat := range categories {
			cats[i] = strconv.Itoa(cat)
		}
		params.Set("cat", strings.Join(cats, ","))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	var doc rssDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	releases := make([]Release, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		releases = append(releases, c.release(item))
	}
	return releases, nil
}

func (c *Client) release(item rssItem) Release {
	rel := Release{
		Title:       item.Title,
		GUID:        item.GUID,
		DownloadURL: item.Link,
		Size:        item.Size,
		Indexer:     c.name,
	}
	if item.Enclosure.Length > 0 {
		rel.Size = item.Enclosure.Length
	}
	if rel.DownloadURL == "" {
		rel.DownloadURL = item.Enclosure.URL
	}
	for _, f := range pubDateFormats {
		if t, err := time.Parse(f, item.PubDate); err == nil {
			rel.PublishDate = t
			break
		}
	}
	for _, a := range item.Attrs {
		switch a.Name {
		case "size":
			if rel.Size == 0 {
				rel.Size, _ = strconv.ParseInt(a.Value, 10, 64)
			}
		case "category":
			if id, err := strconv.Atoi(a.Value); err == nil {
				rel.Categories = append(rel.Categories, id)
			}
		case "seeders":
			rel.Seeders, _ = strconv.Atoi(a.Value)
		}
	}
	return rel
}
