package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/weiawesome/wes-io-live/quickid/internal/generator"
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
	"github.com/weiawesome/wes-io-live/quickid/internal/service"
	pkglog "github.com/weiawesome/wes-io-live/quickid/pkg/log"
)

type idServer struct {
	svc service.IDService
}

func (s *idServer) GenerateID(ctx context.Context, req *GenerateIDRequest) (*GenerateIDResponse, error) {
	id, err := s.svc.Generate(ctx, req.toService())
	if err != nil {
		return nil, toStatus(err)
	}
	return &GenerateIDResponse{ID: id}, nil
}

func (s *idServer) GenerateBatchIDs(ctx context.Context, req *GenerateBatchIDsRequest) (*GenerateBatchIDsResponse, error) {
	ids, err := s.svc.GenerateBatch(ctx, req.GenerateIDRequest.toService(), req.Count)
	if err != nil {
		return nil, toStatus(err)
	}
	return &GenerateBatchIDsResponse{IDs: ids}, nil
}

func (s *idServer) ValidateID(ctx context.Context, req *ValidateIDRequest) (*ValidateIDResponse, error) {
	res, err := s.svc.Validate(ctx, req.Scheme, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ValidateIDResponse{
		Scheme: res.Scheme,
		Valid:  res.Valid,
		Reason: res.Reason,
	}, nil
}

func (s *idServer) ParseID(ctx context.Context, req *ParseIDRequest) (*ParseIDResponse, error) {
	res, err := s.svc.Parse(ctx, req.Scheme, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ParseIDResponse{ParseResult: *res}, nil
}

func (s *idServer) VerifyUniqueness(ctx context.Context, req *VerifyUniquenessRequest) (*VerifyUniquenessResponse, error) {
	res, err := s.svc.Test(ctx, req.Scheme, req.Trials)
	if err != nil {
		return nil, toStatus(err)
	}
	return &VerifyUniquenessResponse{
		Scheme: res.Scheme,
		Trials: res.Trials,
		Unique: res.Unique,
	}, nil
}

func (s *idServer) FindDuplicates(ctx context.Context, req *FindDuplicatesRequest) (*FindDuplicatesResponse, error) {
	return &FindDuplicatesResponse{DuplicateReport: s.svc.Duplicates(ctx, req.Values)}, nil
}

// toStatus maps service errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, idgen.ErrInvalidLength),
		errors.Is(err, idgen.ErrInvalidKind),
		errors.Is(err, service.ErrInvalidCount),
		errors.Is(err, service.ErrInvalidTrials):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, generator.ErrUnknownScheme):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, idgen.ErrEntropyUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// NewServer builds a gRPC server exposing svc with request logging.
func NewServer(svc service.IDService, logger zerolog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
	)
	RegisterIDServiceServer(s, &idServer{svc: svc})
	return s
}

// Listen opens the TCP listener for addr.
func Listen(addr string) (net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return lis, nil
}
