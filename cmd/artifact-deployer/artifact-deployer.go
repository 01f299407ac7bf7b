package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"

	"github.com/neutree-ai/artifact-deployer/cmd/artifact-deployer/app/cmd"
)

func main() {
	klog.InitFlags(nil)

	ctx, cancel := context.WithCancel(context.Background())

	// an interrupted deployment is cleaned up like a timed out one
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		klog.Info("Received shutdown signal")
		cancel()
	}()

	rootCmd := cmd.NewRootCommand()
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	err := rootCmd.ExecuteContext(ctx)

	cancel()
	klog.Flush()

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
