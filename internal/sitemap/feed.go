package sitemap

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

// Namespaces written on the urlset root
const (
	NamespaceSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	NamespaceImage   = "http://www.google.com/schemas/sitemap-image/1.1"
)

// LastModFormat lastmod layout, seconds precision with UTC offset
const LastModFormat = "2006-01-02T15:04:05-07:00"

const (
	rootPriority   = "1.0"
	rootChangeFreq = Daily
	fallbackFreq   = Weekly
)

// Image optional image attached to an entry
type Image struct {
	URL   string
	Title string
}

// Entry one document in the feed. Path is appended to the base URL.
type Entry struct {
	Path       string
	LastMod    time.Time
	Priority   float64
	ChangeFreq ChangeFreq
	Image      *Image
}

// NewEntry scores a document by its age at now. The image is dropped when
// its URL is empty or equals the placeholder sentinel.
func NewEntry(path string, updatedAt, now time.Time, image Image, placeholder string) Entry {
	days := DaysBetween(updatedAt, now)
	e := Entry{
		Path:       path,
		LastMod:    updatedAt,
		Priority:   ScorePriority(days),
		ChangeFreq: ScoreChangeFrequency(days),
	}
	if image.URL != "" && image.URL != placeholder {
		img := image
		e.Image = &img
	}
	return e
}

type xmlURLSet struct {
	XMLName    xml.Name `xml:"urlset"`
	Xmlns      string   `xml:"xmlns,attr"`
	XmlnsImage string   `xml:"xmlns:image,attr"`
	URLs       []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string    `xml:"loc"`
	LastMod    string    `xml:"lastmod,omitempty"`
	ChangeFreq string    `xml:"changefreq"`
	Priority   string    `xml:"priority"`
	Image      *xmlImage `xml:"image:image,omitempty"`
}

type xmlImage struct {
	Loc   string `xml:"image:loc"`
	Title string `xml:"image:title,omitempty"`
}

// BuildFeed writes the sitemap document: a root entry for baseURL first
// (priority 1.0, daily), then entries in the order given.
func BuildFeed(baseURL string, entries []Entry) ([]byte, error) {
	set := xmlURLSet{
		Xmlns:      NamespaceSitemap,
		XmlnsImage: NamespaceImage,
		URLs:       make([]xmlURL, 0, len(entries)+1),
	}

	set.URLs = append(set.URLs, xmlURL{
		Loc:        baseURL,
		ChangeFreq: string(rootChangeFreq),
		Priority:   rootPriority,
	})

	for _, e := range entries {
		set.URLs = append(set.URLs, toXML(baseURL, e))
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	out = append(out, body...)
	return out, nil
}

func toXML(baseURL string, e Entry) xmlURL {
	u := xmlURL{
		Loc:        baseURL + e.Path,
		ChangeFreq: string(e.ChangeFreq),
		Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
	}
	if u.ChangeFreq == "" {
		u.ChangeFreq = string(fallbackFreq)
	}
	if !e.LastMod.IsZero() {
		u.LastMod = e.LastMod.Format(LastModFormat)
	}
	if e.Image != nil && e.Image.URL != "" {
		u.Image = &xmlImage{Loc: e.Image.URL, Title: e.Image.Title}
	}
	return u
}
