package encoder

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/substitution-engine/internal/proto"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/jitter"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
)

// GRPCEncoder — клиент внешнего сервиса векторизации текста.
type GRPCEncoder struct {
	client     proto.TextEncoderServiceClient
	maxRetries int
	logger     logger.Logger
}

func NewGRPCEncoder(client proto.TextEncoderServiceClient, maxRetries int, logger logger.Logger) *GRPCEncoder {
	return &GRPCEncoder{
		client:     client,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (g *GRPCEncoder) Name() string {
	return "text-encoder-grpc"
}

// Prepare — no-op: модель на стороне сервиса уже обучена.
func (g *GRPCEncoder) Prepare(ctx context.Context, corpus []string) error {
	return nil
}

// EncodeText выполняет векторизацию текста с retry-логикой и экспоненциальной задержкой.
func (g *GRPCEncoder) EncodeText(ctx context.Context, text string) ([]float32, error) {
	const (
		op         = "GRPCEncoder.EncodeText"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	var lastErr error
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		res, err := g.client.EncodeText(ctx, &proto.EncodeTextRequest{Text: text})
		if err == nil {
			if len(res.Vector) == 0 {
				return nil, e.Wrap(op, e.ErrEmptyVector)
			}
			return res.Vector, nil
		}
		lastErr = err

		if attempt == g.maxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		g.logger.Warnf("text encoding failed, retrying in %v (attempt %d)", sleepTime, attempt+1)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, fmt.Errorf("%w: all %d attempts failed: %w", e.ErrEncoderFailure, g.maxRetries, lastErr))
}
