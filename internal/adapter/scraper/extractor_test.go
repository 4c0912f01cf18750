package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wiki-quiz/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const articlePage = `<!DOCTYPE html>
<html><body>
<h1 id="firstHeading"> Alan Turing </h1>
<div id="mw-content-text">
  <table class="infobox"><tr><td><p>Born 23 June 1912</p></td></tr></table>
  <p>Alan Mathison Turing was an English mathematician.<sup class="reference">[1]</sup></p>
  <p>   </p>
  <h2>Early life<span class="mw-editsection">[edit]</span></h2>
  <p>Turing was born in Maida Vale, London.[edit]</p>
  <p>He studied at King's College, Cambridge.<sup>[2]</sup></p>
</div>
</body></html>`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotUA
}

func TestArticleExtractor_Fetch_Success(t *testing.T) {
	srv, gotUA := newTestServer(t, http.StatusOK, articlePage)
	extractor := NewArticleExtractor("WikiQuiz/1.0", 0, zap.NewNop())

	article, err := extractor.Fetch(context.Background(), srv.URL+"/wiki/Alan_Turing")
	require.NoError(t, err)

	assert.Equal(t, "WikiQuiz/1.0", *gotUA)
	assert.Equal(t, "Alan Turing", article.Title)
	assert.Equal(t,
		"Alan Mathison Turing was an English mathematician.\n"+
			"Turing was born in Maida Vale, London.\n"+
			"He studied at King's College, Cambridge.",
		article.CleanText)
	assert.NotContains(t, article.CleanText, "[edit]")
	assert.NotContains(t, article.CleanText, "[1]")
	assert.NotContains(t, article.CleanText, "Born 23 June 1912")
}

func TestArticleExtractor_Fetch_HTTPError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, "missing")
	extractor := NewArticleExtractor("WikiQuiz/1.0", 0, zap.NewNop())

	_, err := extractor.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, domain.ErrFetch, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "404")
}

func TestArticleExtractor_Fetch_Unreachable(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, articlePage)
	url := srv.URL
	srv.Close()

	extractor := NewArticleExtractor("WikiQuiz/1.0", 0, zap.NewNop())
	_, err := extractor.Fetch(context.Background(), url)
	require.Error(t, err)
	assert.Equal(t, domain.ErrFetch, domain.CodeOf(err))
}

func TestArticleExtractor_Fetch_InvalidURL(t *testing.T) {
	extractor := NewArticleExtractor("WikiQuiz/1.0", 0, zap.NewNop())
	_, err := extractor.Fetch(context.Background(), "://not a url")
	assert.Equal(t, domain.ErrFetch, domain.CodeOf(err))
}

func TestExtractArticle(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		wantCode domain.ErrorCode
	}{
		{
			name:     "missing content container",
			html:     `<h1 id="firstHeading">Title</h1><div id="other"><p>text</p></div>`,
			wantCode: domain.ErrParse,
		},
		{
			name:     "missing title",
			html:     `<div id="mw-content-text"><p>text</p></div>`,
			wantCode: domain.ErrParse,
		},
		{
			name:     "blank title",
			html:     `<h1 id="firstHeading">  </h1><div id="mw-content-text"><p>text</p></div>`,
			wantCode: domain.ErrParse,
		},
		{
			name:     "no paragraphs",
			html:     `<h1 id="firstHeading">Title</h1><div id="mw-content-text"><div>not prose</div></div>`,
			wantCode: domain.ErrEmptyContent,
		},
		{
			name:     "only whitespace and table paragraphs",
			html:     `<h1 id="firstHeading">Title</h1><div id="mw-content-text"><p> </p><table><tr><td><p>cell</p></td></tr></table></div>`,
			wantCode: domain.ErrEmptyContent,
		},
		{
			name:     "only edit markers",
			html:     `<h1 id="firstHeading">Title</h1><div id="mw-content-text"><p>[edit]</p></div>`,
			wantCode: domain.ErrEmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			require.NoError(t, err)

			article, err := ExtractArticle(doc)
			assert.Nil(t, article)
			assert.Equal(t, tt.wantCode, domain.CodeOf(err))
		})
	}
}
