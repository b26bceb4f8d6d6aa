// cmd/lgsim-sample/main.go
package main

import (
	"lgsim/internal/appshell"
	"lgsim/internal/sampleapp"
)

func main() { appshell.Main(sampleapp.RunContext) }
