package grpc

import (
	"errors"

	"github.com/DRSN-tech/substitution-engine/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrProductNameRequired),
		errors.Is(err, e.ErrInvalidRating),
		errors.Is(err, e.ErrInvalidMaxResults):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, e.ErrProductNotFound):
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	case errors.Is(err, e.ErrIndexNotBuilt):
		return status.Error(codes.Unavailable, e.ErrIndexNotBuilt.Error())
	case errors.Is(err, e.ErrEncoderFailure):
		return status.Error(codes.Unavailable, e.ErrEncoderFailure.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
