package main

import "github.com/adanyl0v/idea-kanban/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustListenAndServeHTTP()
}
