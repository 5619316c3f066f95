package grpc

import (
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
	"github.com/weiawesome/wes-io-live/quickid/internal/service"
)

type GenerateIDRequest struct {
	Scheme string `json:"scheme,omitempty"`
	Type   string `json:"type,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Length *int   `json:"length,omitempty"`
}

func (r *GenerateIDRequest) toService() service.GenerateRequest {
	if r == nil {
		return service.GenerateRequest{}
	}
	return service.GenerateRequest{
		Scheme: r.Scheme,
		Type:   r.Type,
		Prefix: r.Prefix,
		Length: r.Length,
	}
}

type GenerateIDResponse struct {
	ID idgen.ID `json:"id"`
}

type GenerateBatchIDsRequest struct {
	GenerateIDRequest
	Count int `json:"count"`
}

type GenerateBatchIDsResponse struct {
	IDs []idgen.ID `json:"ids"`
}

type ValidateIDRequest struct {
	Scheme string `json:"scheme,omitempty"`
	ID     string `json:"id"`
}

type ValidateIDResponse struct {
	Scheme string `json:"scheme"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type VerifyUniquenessRequest struct {
	Scheme string `json:"scheme,omitempty"`
	Trials int    `json:"trials,omitempty"`
}

type VerifyUniquenessResponse struct {
	Scheme string `json:"scheme"`
	Trials int    `json:"trials"`
	Unique bool   `json:"unique"`
}

type FindDuplicatesRequest struct {
	Values []idgen.ID `json:"values"`
}

type FindDuplicatesResponse struct {
	idgen.DuplicateReport
}

type ParseIDRequest struct {
	Scheme string `json:"scheme,omitempty"`
	ID     string `json:"id"`
}

// ParseIDResponse reports Valid false with an ErrorMessage for IDs the
// scheme rejects.
type ParseIDResponse struct {
	service.ParseResult
}
