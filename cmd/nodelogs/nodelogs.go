package main

import "github.com/Egor213/NodeLogs/internal/app"

func main() {
	app.Run()
}
