// cmd/lightclock/main.go
package main

import (
	"lightclock/internal/app"
	"lightclock/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
