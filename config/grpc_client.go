package config

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type GRPCClient struct {
	conn *grpc.ClientConn
}

func NewGRPCClient(host string, opts ...grpc.DialOption) (*GRPCClient, error) {
	if host == "" {
		host = "localhost:50051"
	}

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to gRPC server: %w", err)
	}

	return &GRPCClient{conn: conn}, nil
}

func (g *GRPCClient) Conn() grpc.ClientConnInterface {
	return g.conn
}

func (g *GRPCClient) Close() error {
	return g.conn.Close()
}
