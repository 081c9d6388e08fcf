package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// QuestionIndexService is a vector index over every question the system has
// ever asked. The orchestrator feeds it newly generated questions and queries
// it before building a follow-up prompt, so the topic-diversity instruction
// can also exclude near-duplicates from other sessions. Callers treat every
// method as best-effort.
type QuestionIndexService interface {
	InitCollection() error
	IndexQuestion(ctx context.Context, sessionID, questionID, text string, embedding []float32) error
	SearchSimilarQuestions(ctx context.Context, embedding []float32, excludeSessionID string, limit int) ([]string, error)
}

type questionIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQuestionIndexService(urlStr, apiKey, collectionName string) (QuestionIndexService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port by default
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &questionIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements QuestionIndexService.
func (q *questionIndexService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// IndexQuestion implements QuestionIndexService.
func (q *questionIndexService) IndexQuestion(ctx context.Context, sessionID, questionID, text string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(questionID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"session_id": sessionID,
			"text":       text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert question: %w", err)
	}

	return nil
}

// SearchSimilarQuestions implements QuestionIndexService. Questions from the
// excluded session are filtered out; those are already in the prompt's
// session-local history.
func (q *questionIndexService) SearchSimilarQuestions(ctx context.Context, embedding []float32, excludeSessionID string, limit int) ([]string, error) {
	var filter *qdrant.Filter
	if excludeSessionID != "" {
		filter = &qdrant.Filter{
			MustNot: []*qdrant.Condition{
				qdrant.NewMatch("session_id", excludeSessionID),
			},
		}
	}

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	var texts []string
	for _, point := range searchResult {
		if text, ok := point.Payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				texts = append(texts, val.StringValue)
			}
		}
	}

	return texts, nil
}
