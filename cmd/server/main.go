package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stocklane/product-service/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		a.Log.Info("Shutting down...")
		a.Server.GracefulStop()
	}()

	if err := a.Run(); err != nil {
		a.Log.Error("Server failed", "error", err)
	}
}
