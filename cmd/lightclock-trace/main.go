// cmd/lightclock-trace/main.go
package main

import (
	"lightclock/internal/appshell"
	"lightclock/internal/traceapp"
)

func main() { appshell.Main(traceapp.RunContext) }
