package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	idgrpc "github.com/weiawesome/wes-io-live/quickid/internal/grpc"
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
	"github.com/weiawesome/wes-io-live/quickid/internal/service"
	"github.com/weiawesome/wes-io-live/quickid/pkg/log"
)

type IDClient struct {
	conn *grpc.ClientConn
}

// NewIDClient connects to an ID service at address. Extra options are
// appended after the insecure transport and JSON codec defaults.
func NewIDClient(address string, opts ...grpc.DialOption) (*IDClient, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(idgrpc.CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to id service: %w", err)
	}
	return &IDClient{conn: conn}, nil
}

// GenerateID generates a single ID.
func (c *IDClient) GenerateID(ctx context.Context, req *idgrpc.GenerateIDRequest) (idgen.ID, error) {
	var resp idgrpc.GenerateIDResponse
	if err := c.invoke(ctx, idgrpc.MethodGenerateID, req, &resp); err != nil {
		return idgen.ID{}, fmt.Errorf("failed to generate ID: %w", err)
	}
	return resp.ID, nil
}

func (c *IDClient) GenerateBatchIDs(ctx context.Context, req *idgrpc.GenerateIDRequest, count int) ([]idgen.ID, error) {
	in := &idgrpc.GenerateBatchIDsRequest{Count: count}
	if req != nil {
		in.GenerateIDRequest = *req
	}

	var resp idgrpc.GenerateBatchIDsResponse
	if err := c.invoke(ctx, idgrpc.MethodGenerateBatchIDs, in, &resp); err != nil {
		return nil, fmt.Errorf("failed to generate batch IDs: %w", err)
	}
	return resp.IDs, nil
}

func (c *IDClient) ValidateID(ctx context.Context, scheme, id string) (*idgrpc.ValidateIDResponse, error) {
	var resp idgrpc.ValidateIDResponse
	if err := c.invoke(ctx, idgrpc.MethodValidateID, &idgrpc.ValidateIDRequest{Scheme: scheme, ID: id}, &resp); err != nil {
		return nil, fmt.Errorf("failed to validate ID: %w", err)
	}
	return &resp, nil
}

// ParseID decodes id with the rules of scheme. Rejected IDs come back with
// Valid false, not as an error.
func (c *IDClient) ParseID(ctx context.Context, scheme, id string) (*service.ParseResult, error) {
	var resp idgrpc.ParseIDResponse
	if err := c.invoke(ctx, idgrpc.MethodParseID, &idgrpc.ParseIDRequest{Scheme: scheme, ID: id}, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse ID: %w", err)
	}
	return &resp.ParseResult, nil
}

func (c *IDClient) VerifyUniqueness(ctx context.Context, scheme string, trials int) (*idgrpc.VerifyUniquenessResponse, error) {
	var resp idgrpc.VerifyUniquenessResponse
	if err := c.invoke(ctx, idgrpc.MethodVerifyUniqueness, &idgrpc.VerifyUniquenessRequest{Scheme: scheme, Trials: trials}, &resp); err != nil {
		return nil, fmt.Errorf("failed to verify uniqueness: %w", err)
	}
	return &resp, nil
}

func (c *IDClient) FindDuplicates(ctx context.Context, values []idgen.ID) (idgen.DuplicateReport, error) {
	var resp idgrpc.FindDuplicatesResponse
	if err := c.invoke(ctx, idgrpc.MethodFindDuplicates, &idgrpc.FindDuplicatesRequest{Values: values}, &resp); err != nil {
		return idgen.DuplicateReport{}, fmt.Errorf("failed to find duplicates: %w", err)
	}
	return resp.DuplicateReport, nil
}

func (c *IDClient) invoke(ctx context.Context, method string, in, out interface{}) error {
	return c.conn.Invoke(log.OutgoingRequestID(ctx), method, in, out)
}

func (c *IDClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
