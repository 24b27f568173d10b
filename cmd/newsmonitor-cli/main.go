package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"newsmonitor/internal/app"
	"newsmonitor/internal/config"
	"newsmonitor/internal/logger"
	"newsmonitor/internal/usecase"
)

func main() {
	action := flag.String("action", "", "action to run: build, get-meta or parse-article")
	param1 := flag.String("param1", "", "source domain, article URL or metadata subsets")
	param2 := flag.String("param2", "", "optional second parameter")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	l := logger.Discard()
	if *verbose {
		l = logger.New("cli", os.Stderr, logger.ParseLevel(cfg.LogLevel))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res := usecase.NewService(app.NewEnv(cfg, l)).Execute(ctx, usecase.Request{
		Record: map[string]any{"method": "CLI", "path": "/" + *action},
		Action: optional(*action),
		Param1: optional(*param1),
		Param2: optional(*param2),
	})

	out, err := json.MarshalIndent(res.Body(), "", "  ")
	if err != nil {
		log.Fatalf("encoding result: %v", err)
	}
	fmt.Println(string(out))

	if !res.OK() {
		os.Exit(1)
	}
}

// optional maps an unset flag to an absent argument.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
