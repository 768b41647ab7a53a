//go:build js && wasm

// Command sitewasm is the page's client, loaded by static/boot.js.
//
//	GOOS=js GOARCH=wasm go build -o dist/site.wasm ./cmd/sitewasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" dist/
package main

import (
	"github.com/zaaray/portfolio/internal/client"
	"github.com/zaaray/portfolio/internal/dom/jsdom"
)

func main() {
	c := client.New(jsdom.Window(), jsdom.Document())
	c.Mount()
	// The listeners hold Go callbacks; the program must outlive the page.
	select {}
}
