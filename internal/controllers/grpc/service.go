package grpc

import (
	"context"
	"encoding/json"

	"github.com/chrissnell/turngeometry/pkg/responseformat"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// The service carries JSON payloads rather than protobuf messages. Callers
// select the codec with grpc.CallContentSubtype(CodecName).
const (
	CodecName      = "json"
	ServiceName    = "turngeometry.v1.Geometry"
	EvaluateMethod = "/" + ServiceName + "/Evaluate"
)

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// EvaluateRequest names an operation and its arguments.
type EvaluateRequest struct {
	Operation string                  `json:"operation"`
	Args      []responseformat.Number `json:"args,omitempty"`
}

// EvaluateResponse carries the value of an evaluated operation.
type EvaluateResponse struct {
	Operation string                `json:"operation"`
	Value     responseformat.Number `json:"value"`
	Unit      string                `json:"unit"`
}

// GeometryServer is the server API for the Geometry service.
type GeometryServer interface {
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
}

func evaluateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeometryServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluateMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GeometryServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// GeometryServiceDesc describes the Geometry service for grpc.Server.RegisterService.
var GeometryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GeometryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    evaluateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "turngeometry/v1/geometry",
}

// RegisterGeometryServer registers srv with s.
func RegisterGeometryServer(s grpc.ServiceRegistrar, srv GeometryServer) {
	s.RegisterService(&GeometryServiceDesc, srv)
}

// Client calls the Geometry service over an established connection.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient returns a Client using cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Evaluate runs operation on the server.
func (c *Client) Evaluate(ctx context.Context, operation string, args ...float64) (*EvaluateResponse, error) {
	in := &EvaluateRequest{Operation: operation}
	for _, a := range args {
		in.Args = append(in.Args, responseformat.Number(a))
	}
	out := new(EvaluateResponse)
	if err := c.cc.Invoke(ctx, EvaluateMethod, in, out, grpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}
