package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// languageClient is a singleton language client instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
)

// InitLanguageClient initializes and returns a language client from
// base64-encoded service account credentials.
func InitLanguageClient() (*language.Client, error) {
	var initErr error
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			initErr = fmt.Errorf("decoding natural language credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, initErr = language.NewClient(context.Background(), opt)
	})
	if initErr != nil {
		return nil, initErr
	}
	if languageClient == nil {
		return nil, fmt.Errorf("language client not initialized")
	}
	return languageClient, nil
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

// ExtractLocations sends text to the Cloud Natural Language API and
// returns the names of LOCATION and ADDRESS entities, best guess first.
func ExtractLocations(ctx context.Context, client *language.Client, text string) ([]string, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var locations []string
	for _, e := range resp.Entities {
		switch e.Type {
		case languagepb.Entity_LOCATION, languagepb.Entity_ADDRESS:
			locations = append(locations, e.Name)
		}
	}
	return locations, nil
}
