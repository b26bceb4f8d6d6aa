// cmd/lgsim/main.go
package main

import (
	"lgsim/internal/app"
	"lgsim/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
