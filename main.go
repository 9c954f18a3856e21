package main

import (
	"context"
	"os"

	"blogshell/service"
)

func main() {
	os.Exit(service.Run(context.Background(), os.Args))
}
