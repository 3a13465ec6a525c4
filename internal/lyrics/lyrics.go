package lyrics

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"mordomo/internal/logger"
)

const (
	searchBase = "https://solr.sscdn.co/letras/m1/"
	pageBase   = "https://www.letras.mus.br"
	userAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	// EmbedChunkLimit is Discord's embed description cap.
	EmbedChunkLimit = 4096
)

var (
	ErrNotFound = errors.New("lyrics not found")
	ErrNoLyrics = errors.New("page has no lyrics block")
)

// Result is one scraped song.
type Result struct {
	Title  string
	Artist string
	Text   string
	URL    string
}

// Client scrapes letras.mus.br. Requests are rate limited per domain so a
// burst of lyrics commands cannot hammer the site.
type Client struct {
	c *colly.Collector
}

func New() *Client {
	c := colly.NewCollector(colly.UserAgent(userAgent))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*letras.mus.br*", Delay: time.Second})
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*solr.sscdn.co*", Delay: time.Second})
	c.SetRequestTimeout(30 * time.Second)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.5")
	})
	return &Client{c: c}
}

// Get searches for the song and scrapes the first hit.
func (cl *Client) Get(query string) (*Result, error) {
	songURL, err := cl.search(query)
	if err != nil {
		return nil, err
	}
	return cl.fetch(songURL)
}

// search hits the site's suggest endpoint and returns the page URL of the
// best match.
func (cl *Client) search(query string) (string, error) {
	type doc struct {
		DNS string `json:"dns"` // artist slug
		URL string `json:"url"` // song slug
	}
	type solrResponse struct {
		Response struct {
			Docs []doc `json:"docs"`
		} `json:"response"`
	}

	var (
		parsed  solrResponse
		fetched bool
	)
	c := cl.c.Clone()
	c.OnResponse(func(r *colly.Response) {
		fetched = true
		if err := json.Unmarshal(r.Body, &parsed); err != nil {
			logger.Warnf("lyrics: bad search payload: %v", err)
		}
	})

	searchURL := fmt.Sprintf("%s?q=%s&wt=json", searchBase, url.QueryEscape(query))
	if err := c.Visit(searchURL); err != nil {
		return "", fmt.Errorf("lyrics search: %w", err)
	}
	c.Wait()

	if !fetched || len(parsed.Response.Docs) == 0 {
		return "", ErrNotFound
	}
	first := parsed.Response.Docs[0]
	if first.DNS == "" || first.URL == "" {
		return "", ErrNotFound
	}
	return fmt.Sprintf("%s/%s/%s/", pageBase, first.DNS, first.URL), nil
}

// fetch scrapes a song page.
func (cl *Client) fetch(songURL string) (*Result, error) {
	var (
		result  *Result
		pageErr error
	)
	c := cl.c.Clone()
	c.OnHTML("html", func(e *colly.HTMLElement) {
		result, pageErr = parseSongPage(e.DOM)
	})
	if err := c.Visit(songURL); err != nil {
		return nil, fmt.Errorf("lyrics page: %w", err)
	}
	c.Wait()

	if pageErr != nil {
		return nil, pageErr
	}
	if result == nil {
		return nil, ErrNoLyrics
	}
	result.URL = songURL
	return result, nil
}

// parseSongPage extracts title, artist and verses from a song page DOM.
func parseSongPage(root *goquery.Selection) (*Result, error) {
	lyricBlock := root.Find("div.lyric-original")
	if lyricBlock.Length() == 0 {
		return nil, ErrNoLyrics
	}

	var verses []string
	lyricBlock.Find("p").Each(func(_ int, p *goquery.Selection) {
		html, err := p.Html()
		if err != nil {
			return
		}
		verse := strings.ReplaceAll(html, "<br/>", "\n")
		verse = strings.ReplaceAll(verse, "<br>", "\n")
		verses = append(verses, strings.TrimSpace(verse))
	})
	if len(verses) == 0 {
		return nil, ErrNoLyrics
	}

	title := strings.TrimSpace(root.Find("div.title-content h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(root.Find("h1").First().Text())
	}
	artist := strings.TrimSpace(root.Find("div.title-content h2 a").First().Text())
	if artist == "" {
		artist = strings.TrimSpace(root.Find("h2 a").First().Text())
	}

	return &Result{
		Title:  title,
		Artist: artist,
		Text:   strings.Join(verses, "\n\n"),
	}, nil
}

// SplitChunks breaks the lyrics text into embed-sized pieces, preferring
// verse boundaries over hard cuts.
func SplitChunks(text string, limit int) []string {
	if limit <= 0 {
		limit = EmbedChunkLimit
	}
	if len(text) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		cur    strings.Builder
	)
	for _, verse := range strings.Split(text, "\n\n") {
		// a single oversized verse gets hard-cut
		for len(verse) > limit {
			chunks = append(chunks, verse[:limit])
			verse = verse[limit:]
		}
		if cur.Len() > 0 && cur.Len()+len(verse)+2 > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(verse)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
