package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// gRPC
	FieldGRPCMethod = "grpc_method"
	FieldGRPCCode   = "grpc_code"

	// ID generation
	FieldScheme     = "scheme"
	FieldIDType     = "id_type"
	FieldPrefix     = "prefix"
	FieldLength     = "length"
	FieldCount      = "count"
	FieldTrials     = "trials"
	FieldUnique     = "unique"
	FieldDuplicates = "duplicates"
)
