package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// Engine returns the template engine for the editor pages.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
