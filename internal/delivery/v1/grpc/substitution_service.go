package grpc

import (
	"context"

	"github.com/DRSN-tech/substitution-engine/internal/proto"
	"github.com/DRSN-tech/substitution-engine/internal/usecase"
	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"github.com/DRSN-tech/substitution-engine/pkg/logger"
)

type SubstitutionService struct {
	proto.UnimplementedSubstitutionServiceServer
	recUC  usecase.RecommendUC
	logger logger.Logger
}

func NewSubstitutionService(recUC usecase.RecommendUC, logger logger.Logger) *SubstitutionService {
	return &SubstitutionService{recUC: recUC, logger: logger}
}

func (s *SubstitutionService) Recommend(ctx context.Context, req *proto.RecommendRequest) (*proto.RecommendResponse, error) {
	const op = "grpc.Recommend"

	// Нулевой user_id означает анонимный запрос
	var userID *int64
	if req.UserId != 0 {
		id := req.UserId
		userID = &id
	}

	res, err := s.recUC.Recommend(ctx, usecase.NewRecommendReq(
		req.ProductName,
		req.DietaryFilter,
		req.MinRating,
		int(req.MaxResults),
		userID,
	))
	if err != nil {
		s.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.RecommendResponse{
		Substitutes: toArrGRPCSubstitute(res.Substitutes),
	}, nil
}

func toGRPCSubstitute(s *usecase.RankedSubstituteInfo) *proto.Substitute {
	return &proto.Substitute{
		Id:          s.ID,
		Name:        s.Name,
		Brand:       s.Brand,
		Category:    s.Category,
		PriceCents:  s.Price,
		StockLevel:  s.StockLevel,
		Rating:      s.Rating,
		DietaryTag:  s.DietaryTag,
		Description: s.Description,
		ImageUrl:    s.ImageURL,
		Similarity:  s.Similarity,
	}
}

func toArrGRPCSubstitute(substitutes []usecase.RankedSubstituteInfo) []*proto.Substitute {
	res := make([]*proto.Substitute, len(substitutes))
	for i := range substitutes {
		res[i] = toGRPCSubstitute(&substitutes[i])
	}

	return res
}
