package main

import (
	"github.com/shuvajitmaitra/glamor-gallery/internal/app"
)

func main() {
	app.Run()
}
