package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS returns the embedded static asset tree rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}

// PresentationPDF returns the program presentation served at /opai.pdf.
func PresentationPDF() ([]byte, error) {
	return static.ReadFile("static/opai.pdf")
}
