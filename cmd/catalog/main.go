package main

import (
	"os"

	"github.com/playkaro/video-catalog/internal/app"
)

func main() {
	os.Exit(app.Run("catalog", run))
}
