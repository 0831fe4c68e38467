package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"github.com/wordweaver-ai/wordweaver/internal/caption"
)

//go:embed web/index.html web/about.md
var webFS embed.FS

var indexTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

type pageData struct {
	Platforms       []string
	Styles          []string
	Languages       []string
	DefaultPlatform string
	DefaultStyle    string
	DefaultLanguage string
	Delimiter       string
	About           template.HTML
}

type page struct {
	html []byte
}

// newPage renders the form once; nothing in it varies per request.
func newPage() *page {
	data := pageData{
		Platforms:       caption.Platforms,
		Styles:          caption.Styles,
		Languages:       caption.Languages,
		DefaultPlatform: caption.DefaultPlatform,
		DefaultStyle:    caption.DefaultStyle,
		DefaultLanguage: caption.DefaultLanguage,
		Delimiter:       caption.Delimiter,
		About:           renderAbout(),
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		panic(err)
	}
	return &page{html: buf.Bytes()}
}

func renderAbout() template.HTML {
	src, err := webFS.ReadFile("web/about.md")
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(string(src)))
	}
	return template.HTML(buf.String())
}

func (p *page) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", p.html)
}
