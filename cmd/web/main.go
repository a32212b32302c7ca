package main

import "visualvibe_backend/internal/app"

func main() {
	app.Run()
}
