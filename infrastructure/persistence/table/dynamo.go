package table

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// DynamoClient is the subset of the DynamoDB API the store uses.
type DynamoClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoStoreConfig tunes retry and circuit-breaker behavior of the
// DynamoDB-backed store.
type DynamoStoreConfig struct {
	TableName      string
	MaxRetries     int
	RetryBaseDelay time.Duration
	CallTimeout    time.Duration
}

// DefaultDynamoStoreConfig returns the production defaults.
func DefaultDynamoStoreConfig(tableName string) DynamoStoreConfig {
	return DynamoStoreConfig{
		TableName:      tableName,
		MaxRetries:     3,
		RetryBaseDelay: 50 * time.Millisecond,
		CallTimeout:    5 * time.Second,
	}
}

// DynamoStore implements Store against a single DynamoDB table. Transient
// failures (throttling, internal errors) are retried with exponential
// backoff up to MaxRetries; a circuit breaker sheds calls entirely when the
// backend keeps failing. Validation-class errors from the API are never
// retried.
type DynamoStore struct {
	client  DynamoClient
	cfg     DynamoStoreConfig
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewDynamoStore creates a DynamoDB-backed store.
func NewDynamoStore(client DynamoClient, cfg DynamoStoreConfig, logger *zap.Logger) *DynamoStore {
	s := &DynamoStore{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "dynamodb",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.8
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			// Not-found and caller errors say nothing about backend health.
			return err == nil || errors.Is(err, ErrItemNotFound) || !isTransient(err)
		},
	})
	return s
}

// Get implements Store.
func (s *DynamoStore) Get(ctx context.Context, pk, sk string) (Item, error) {
	var item Item
	err := s.execute(ctx, "GetItem", func(ctx context.Context) error {
		out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(s.cfg.TableName),
			Key:       primaryKey(pk, sk),
		})
		if err != nil {
			return err
		}
		if out.Item == nil {
			return ErrItemNotFound
		}
		item = out.Item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Put implements Store.
func (s *DynamoStore) Put(ctx context.Context, item Item) error {
	return s.execute(ctx, "PutItem", func(ctx context.Context) error {
		_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.cfg.TableName),
			Item:      item,
		})
		return err
	})
}

// Delete implements Store.
func (s *DynamoStore) Delete(ctx context.Context, pk, sk string) error {
	return s.execute(ctx, "DeleteItem", func(ctx context.Context) error {
		_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.cfg.TableName),
			Key:       primaryKey(pk, sk),
		})
		return err
	})
}

// BatchDelete implements Store. DynamoDB caps BatchWriteItem at 25 requests,
// so larger partitions are deleted in chunks; unprocessed keys from one call
// are fed into the next attempt.
func (s *DynamoStore) BatchDelete(ctx context.Context, pk string, sks []string) error {
	requests := make([]types.WriteRequest, 0, len(sks))
	for _, sk := range sks {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: primaryKey(pk, sk)},
		})
	}

	for len(requests) > 0 {
		batch := requests
		if len(batch) > 25 {
			batch = batch[:25]
		}
		rest := requests[len(batch):]

		err := s.execute(ctx, "BatchWriteItem", func(ctx context.Context) error {
			out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					s.cfg.TableName: batch,
				},
			})
			if err != nil {
				return err
			}
			rest = append(rest, out.UnprocessedItems[s.cfg.TableName]...)
			return nil
		})
		if err != nil {
			return err
		}
		requests = rest
	}
	return nil
}

// QueryPartition implements Store.
func (s *DynamoStore) QueryPartition(ctx context.Context, pk string) ([]Item, error) {
	return s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.cfg.TableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	})
}

// QueryPrefix implements Store.
func (s *DynamoStore) QueryPrefix(ctx context.Context, pk, skPrefix string) ([]Item, error) {
	return s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.cfg.TableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
			":sk": &types.AttributeValueMemberS{Value: skPrefix},
		},
	})
}

// QueryIndex implements Store.
func (s *DynamoStore) QueryIndex(ctx context.Context, indexName, indexPK string) ([]Item, error) {
	attrs, ok := IndexKeyAttrs[indexName]
	if !ok {
		return nil, ErrUnknownIndex(indexName)
	}
	return s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.cfg.TableName),
		IndexName:              aws.String(indexName),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :pk", attrs[0])),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: indexPK},
		},
	})
}

// Scan implements Store.
func (s *DynamoStore) Scan(ctx context.Context) ([]Item, error) {
	var items []Item
	input := &dynamodb.ScanInput{TableName: aws.String(s.cfg.TableName)}
	for {
		var out *dynamodb.ScanOutput
		err := s.execute(ctx, "Scan", func(ctx context.Context) error {
			var err error
			out, err = s.client.Scan(ctx, input)
			return err
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (s *DynamoStore) queryAll(ctx context.Context, input *dynamodb.QueryInput) ([]Item, error) {
	var items []Item
	for {
		var out *dynamodb.QueryOutput
		err := s.execute(ctx, "Query", func(ctx context.Context) error {
			var err error
			out, err = s.client.Query(ctx, input)
			return err
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

// execute runs one API call through the circuit breaker, retrying transient
// failures with exponential backoff.
func (s *DynamoStore) execute(ctx context.Context, operation string, call func(ctx context.Context) error) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		var lastErr error
		for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
			if attempt > 0 {
				delay := s.cfg.RetryBaseDelay << (attempt - 1)
				s.logger.Warn("retrying table operation",
					zap.String("operation", operation),
					zap.Int("attempt", attempt),
					zap.Duration("delay", delay),
					zap.Error(lastErr),
				)
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(delay):
				}
			}

			callCtx := ctx
			if s.cfg.CallTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, s.cfg.CallTimeout)
				lastErr = call(callCtx)
				cancel()
			} else {
				lastErr = call(callCtx)
			}

			if lastErr == nil || !isTransient(lastErr) {
				return nil, lastErr
			}
		}
		return nil, fmt.Errorf("%s: retries exhausted: %w", operation, lastErr)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s: storage circuit open: %w", operation, err)
	}
	return err
}

// isTransient reports whether an error is worth retrying. Throttling and
// server-side errors are; conditional failures, validation errors and
// not-found results are not.
func isTransient(err error) bool {
	if err == nil || errors.Is(err, ErrItemNotFound) {
		return false
	}
	var (
		throughput *types.ProvisionedThroughputExceededException
		internal   *types.InternalServerError
		limit      *types.RequestLimitExceeded
	)
	if errors.As(err, &throughput) || errors.As(err, &internal) || errors.As(err, &limit) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return false
}

func primaryKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}
