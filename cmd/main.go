package main

import (
	"chatravel/domain/event"
	grpcserver "chatravel/infrastructure/grpc/server"
	"chatravel/infrastructure/web"
	"chatravel/internal"
	v1 "chatravel/proto/chat"
	"chatravel/repositories"
	"chatravel/runtime"
	"chatravel/runtime/workers"
	"chatravel/services"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for both servers and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Buses, registry, repositories, services
	// Two independent bus instances: messages never replay, interest
	// matches replay the latest snapshot to late subscribers.
	messageBus := runtime.NewBus[event.MessagePosted](log, config.BusBufferSize, 0)
	matchBus := runtime.NewBus[event.DiscoverableUser](log, config.BusBufferSize, 1)
	registry := runtime.NewRegistry()

	messageRepository := repositories.NewMessageRepository(db, log)
	userRepository := repositories.NewUserRepository(db, log)
	chatService := services.NewChatService(log, messageRepository, messageBus)
	userService := services.NewUserService(log, userRepository, matchBus)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervised workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewPushFanout(log, messageBus, registry))
	go sup.Run(ctx)

	// 6. gRPC Server Setup
	grpcAddress := fmt.Sprintf("%s:%d", config.Host, config.GRPCPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}

	s := grpc.NewServer()
	chatServer := grpcserver.NewChatServer(log, chatService, messageBus, config.StreamHeartbeat)
	v1.RegisterChatServiceServer(s, chatServer)

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting gRPC server", "address", grpcAddress)
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. HTTP Server Setup (poll, WebSocket, SSE)
	handler := web.NewHandler(log, chatService, userService)
	wsHandler := web.NewWSHandler(log, chatService, registry, web.WSConfig{
		SendBufferSize: config.ConnectionBufferSize,
		PingInterval:   config.WSPingInterval,
		WriteWait:      config.WSWriteWait,
	})
	sseHandler := web.NewSSEHandler(log, userService, matchBus, config.SSEHeartbeat)
	mux := handler.Routes(internal.HealthHandler(log), wsHandler, sseHandler)

	httpAddress := fmt.Sprintf("%s:%d", config.Host, config.HTTPPort)
	httpServer := &http.Server{Addr: httpAddress, Handler: mux}
	go func() {
		log.Info("Starting HTTP server", "address", httpAddress)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	s.GracefulStop()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
