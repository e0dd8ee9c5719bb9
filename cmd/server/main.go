package main

import "github.com/PSAN1987/graffitiees-LINE-BOT/internal/app"

func main() {
	app.Run()
}
