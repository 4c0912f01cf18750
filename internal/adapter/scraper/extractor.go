package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wiki-quiz/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	titleSelector   = "h1#firstHeading"
	contentSelector = "div#mw-content-text"
	// footnote markers, tables and "[edit]" links carry no article prose
	noiseSelector = "sup, table, .mw-editsection"
	editMarker    = "[edit]"
)

// ArticleExtractor implements domain.ContentExtractor for MediaWiki pages.
type ArticleExtractor struct {
	client    *http.Client
	userAgent string
	logger    *zap.Logger
}

// NewArticleExtractor creates an extractor. A zero timeout leaves requests
// bounded only by the caller's context.
func NewArticleExtractor(userAgent string, timeout time.Duration, logger *zap.Logger) *ArticleExtractor {
	return NewArticleExtractorWithClient(&http.Client{Timeout: timeout}, userAgent, logger)
}

// NewArticleExtractorWithClient is NewArticleExtractor with a caller-supplied
// HTTP client.
func NewArticleExtractorWithClient(client *http.Client, userAgent string, logger *zap.Logger) *ArticleExtractor {
	return &ArticleExtractor{
		client:    client,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch implements domain.ContentExtractor
func (e *ArticleExtractor) Fetch(ctx context.Context, url string) (*domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewFetchError(url, err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Error("Failed to fetch article", zap.String("url", url), zap.Error(err))
		return nil, domain.NewFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		e.logger.Warn("Article request returned error status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return nil, domain.NewFetchError(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, domain.NewFetchError(url, fmt.Errorf("read body: %w", err))
	}

	article, err := ExtractArticle(doc)
	if err != nil {
		e.logger.Warn("Failed to extract article", zap.String("url", url), zap.Error(err))
		return nil, err
	}

	e.logger.Info("Extracted article",
		zap.String("url", url),
		zap.String("title", article.Title),
		zap.Int("text_length", len(article.CleanText)))
	return article, nil
}

// ExtractArticle reduces a parsed page to its title and paragraph text.
func ExtractArticle(doc *goquery.Document) (*domain.Article, error) {
	heading := doc.Find(titleSelector).First()
	title := strings.TrimSpace(heading.Text())
	if heading.Length() == 0 || title == "" {
		return nil, domain.NewParseError("could not find article title")
	}

	content := doc.Find(contentSelector).First()
	if content.Length() == 0 {
		return nil, domain.NewParseError("could not find main content block")
	}

	content.Find(noiseSelector).Remove()

	var paragraphs []string
	content.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := p.Text()
		if strings.TrimSpace(text) != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	cleanText := strings.ReplaceAll(strings.Join(paragraphs, "\n"), editMarker, "")
	if strings.TrimSpace(cleanText) == "" {
		return nil, domain.NewEmptyContentError()
	}

	return &domain.Article{
		Title:     title,
		CleanText: cleanText,
	}, nil
}

var _ domain.ContentExtractor = (*ArticleExtractor)(nil)
