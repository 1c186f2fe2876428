package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/pipeline"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName          = "inference.Inference"
	predictPriceMethod   = "/" + serviceName + "/PredictPrice"
	modelInfoMethod      = "/" + serviceName + "/ModelInfo"
	defaultRemoteTimeout = 10 * time.Second

	fieldEstimate     = "estimate"
	fieldModelName    = "model_name"
	fieldModelVersion = "model_version"
)

// ErrRejected reports that the remote backend refused the feature row.
var ErrRejected = errors.New("prediction rejected by inference backend")

// Remote predicts through the Inference gRPC service. The row travels as a
// google.protobuf.Struct and the estimate comes back as a Struct holding the
// value and the model identity.
type Remote struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
}

func NewRemote(conn grpc.ClientConnInterface, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &Remote{conn: conn, timeout: timeout}
}

func (r *Remote) Predict(ctx context.Context, row pipeline.Row) (Estimate, error) {
	req, err := structpb.NewStruct(map[string]any(row))
	if err != nil {
		return Estimate{}, fmt.Errorf("failed to encode feature row: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res := &structpb.Struct{}
	if err := r.conn.Invoke(timeoutCtx, predictPriceMethod, req, res); err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
			return Estimate{}, fmt.Errorf("%w: %s", ErrRejected, st.Message())
		}
		return Estimate{}, err
	}

	fields := res.GetFields()
	value, ok := fields[fieldEstimate].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return Estimate{}, fmt.Errorf("inference response has no %q", fieldEstimate)
	}
	return Estimate{
		Value:        value.NumberValue,
		ModelName:    fields[fieldModelName].GetStringValue(),
		ModelVersion: fields[fieldModelVersion].GetStringValue(),
	}, nil
}

func (r *Remote) Info(ctx context.Context) (models.ModelInfo, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res := &structpb.Struct{}
	if err := r.conn.Invoke(timeoutCtx, modelInfoMethod, &emptypb.Empty{}, res); err != nil {
		return models.ModelInfo{}, err
	}

	data, err := res.MarshalJSON()
	if err != nil {
		return models.ModelInfo{}, err
	}
	var info models.ModelInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return models.ModelInfo{}, fmt.Errorf("failed to decode model info: %w", err)
	}
	info.Source = SourceGRPC
	return info, nil
}

// InferenceServer is the server side of the Inference service.
type InferenceServer interface {
	PredictPrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ModelInfo(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

var inferenceServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*InferenceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PredictPrice",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				in := &structpb.Struct{}
				if err := dec(in); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(InferenceServer).PredictPrice(ctx, in)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: predictPriceMethod}
				return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
					return srv.(InferenceServer).PredictPrice(ctx, req.(*structpb.Struct))
				})
			},
		},
		{
			MethodName: "ModelInfo",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				in := &emptypb.Empty{}
				if err := dec(in); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(InferenceServer).ModelInfo(ctx, in)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: modelInfoMethod}
				return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
					return srv.(InferenceServer).ModelInfo(ctx, req.(*emptypb.Empty))
				})
			},
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inference.proto",
}

// RegisterInferenceServer exposes p on s.
func RegisterInferenceServer(s grpc.ServiceRegistrar, p Predictor) {
	s.RegisterService(&inferenceServiceDesc, &inferenceServer{predictor: p})
}

type inferenceServer struct {
	predictor Predictor
}

func (s *inferenceServer) PredictPrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	est, err := s.predictor.Predict(ctx, pipeline.Row(req.AsMap()))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, status.FromContextError(ctxErr).Err()
		}
		if pipeline.IsInputError(err) || errors.Is(err, ErrRejected) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldEstimate:     structpb.NewNumberValue(est.Value),
		fieldModelName:    structpb.NewStringValue(est.ModelName),
		fieldModelVersion: structpb.NewStringValue(est.ModelVersion),
	}}, nil
}

func (s *inferenceServer) ModelInfo(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	info, err := s.predictor.Info(ctx)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}

	data, err := json.Marshal(info)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(data); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
