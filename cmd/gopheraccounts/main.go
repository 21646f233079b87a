package main

import "github.com/talx-hub/gopher-accounts/internal/service"

func main() {
	service.RunServer()
}
