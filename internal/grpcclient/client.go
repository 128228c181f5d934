package grpcclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	forwarder "atrack-svr/proto"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client forwarder.ForwarderClient
}

func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, client: forwarder.NewForwarderClient(conn)}, nil
}

func (g *GRPCClient) Close() {
	_ = g.conn.Close()
}

// SendData pushes one decoded record downstream. A failed delivery is the
// caller's to log; nothing is retried here.
func (g *GRPCClient) SendData(deviceID, payload string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := g.client.SendData(ctx, &forwarder.DataRequest{
		DeviceId: deviceID,
		Payload:  payload,
	})
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("forwarder rejected record for device %s", deviceID)
	}
	return nil
}
