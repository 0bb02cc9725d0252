package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/gracepriest/BasicLangvb-sub002/internal/lsp"
)

const lsName = "basiclang"

var version = "0.1.0"

func main() {
	commonlog.Configure(1, nil)

	langHandler := lsp.NewHandler()

	handler := protocol.Handler{
		Initialize:                     langHandler.Initialize,
		Initialized:                    langHandler.Initialized,
		Shutdown:                       langHandler.Shutdown,
		SetTrace:                       langHandler.SetTrace,
		TextDocumentDidOpen:            langHandler.TextDocumentDidOpen,
		TextDocumentDidChange:          langHandler.TextDocumentDidChange,
		TextDocumentDidClose:           langHandler.TextDocumentDidClose,
		TextDocumentCompletion:         langHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: langHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("starting %s language server %s", lsName, version)
	if err := s.RunStdio(); err != nil {
		log.Println("language server failed:", err)
		os.Exit(1)
	}
}
