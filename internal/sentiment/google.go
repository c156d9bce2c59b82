package sentiment

import (
	"context"
	"fmt"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
)

// GoogleAnalyzer scores text with the Cloud Natural Language API, the same
// service the journal analysis pipeline has always used.
type GoogleAnalyzer struct {
	client *language.Client
}

func NewGoogleAnalyzer(ctx context.Context) (*GoogleAnalyzer, error) {
	client, err := language.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating language client: %w", err)
	}
	return &GoogleAnalyzer{client: client}, nil
}

func (g *GoogleAnalyzer) Score(ctx context.Context, text string) (float64, error) {
	response, err := g.client.AnalyzeSentiment(ctx, &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{Content: text},
			Type:   languagepb.Document_PLAIN_TEXT,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("analyze sentiment: %w", err)
	}

	documentSentiment := response.GetDocumentSentiment()
	if documentSentiment == nil {
		return 0, nil
	}
	return float64(documentSentiment.GetScore()), nil
}

func (g *GoogleAnalyzer) Close() error {
	return g.client.Close()
}
