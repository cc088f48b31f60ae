package main

import "time"

type Config struct {
	BusBufferSize        int           `env:"BUS_BUFFER_SIZE,default=64"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	StreamHeartbeat      time.Duration `env:"STREAM_HEARTBEAT_INTERVAL,default=25s"`
	SSEHeartbeat         time.Duration `env:"SSE_HEARTBEAT_INTERVAL,default=15s"`
	WSPingInterval       time.Duration `env:"WS_PING_INTERVAL,default=30s"`
	WSWriteWait          time.Duration `env:"WS_WRITE_WAIT,default=10s"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=localhost"`
	HTTPPort             int           `env:"HTTP_PORT,default=8080"`
	GRPCPort             int           `env:"GRPC_PORT,default=9090"`
}
