// Package feed publica el catálogo de esquemas como RSS 2.0.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
)

var _ ports.SchemeFeedBuilder = (*RSSBuilder)(nil)

var channelTitles = map[string]string{
	"en": "Government Schemes for Maharashtra Entrepreneurs",
	"hi": "महाराष्ट्र उद्यमियों के लिए सरकारी योजनाएं",
	"mr": "महाराष्ट्र उद्योजकांसाठी सरकारी योजना",
}

// RSSBuilder arma el feed con etree.
type RSSBuilder struct {
	now func() time.Time
}

// NewRSSBuilder construye el builder.
func NewRSSBuilder() *RSSBuilder { return &RSSBuilder{now: time.Now} }

// BuildSchemeFeed un <item> por esquema; el link apunta al sitio oficial y el guid al recurso de la API.
func (b *RSSBuilder) BuildSchemeFeed(lang, baseURL string, schemes []dto.SchemeResponse) ([]byte, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	title, ok := channelTitles[lang]
	if !ok {
		title = channelTitles["en"]
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:atom", "http://www.w3.org/2005/Atom")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(title)
	channel.CreateElement("link").SetText(baseURL + "/api/schemes?lang=" + lang)
	channel.CreateElement("description").SetText("Financial assistance and support programs for rural entrepreneurs")
	channel.CreateElement("language").SetText(lang)
	channel.CreateElement("lastBuildDate").SetText(b.now().UTC().Format(time.RFC1123Z))
	self := channel.CreateElement("atom:link")
	self.CreateAttr("href", baseURL+"/api/schemes/feed.xml?lang="+lang)
	self.CreateAttr("rel", "self")
	self.CreateAttr("type", "application/rss+xml")

	for _, s := range schemes {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(s.Title)
		item.CreateElement("link").SetText(s.URL)
		desc := s.Description
		if s.Amount != "" {
			desc += " (" + s.Amount + ")"
		}
		item.CreateElement("description").SetText(desc)
		if s.CategoryLabel != "" {
			item.CreateElement("category").SetText(s.CategoryLabel)
		}
		guid := item.CreateElement("guid")
		guid.CreateAttr("isPermaLink", "false")
		guid.SetText(fmt.Sprintf("%s/api/schemes/%d", baseURL, s.ID))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar RSS: %w", err)
	}
	return out, nil
}
