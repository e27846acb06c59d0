/*
Package tools exposes the checker as Model Context Protocol tools.

Three tools are registered on an mcp-go server:

	spellcheck_word   check one word and list suggestions
	spellcheck_text   check a block of text, optionally with line/column
	spellcheck_file   check a file on disk

Results come back as a plain text listing. Bad arguments and read failures
are reported as tool errors rather than protocol errors.
*/
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Handlers holds the tool handlers bound to one checker
type Handlers struct {
	checker spell.IChecker
}

// NewHandlers binds the tool handlers to checker
func NewHandlers(checker spell.IChecker) *Handlers {
	return &Handlers{checker: checker}
}

// NewServer creates an MCP server with the spellcheck tools registered
func NewServer(checker spell.IChecker, version string) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		"wordcheck",
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithInstructions("Spell checks words, text and files against a trie backed dictionary."),
	)
	Register(mcpServer, checker)
	return mcpServer
}

// Register adds the spellcheck tools to mcpServer
func Register(mcpServer *server.MCPServer, checker spell.IChecker) {
	h := NewHandlers(checker)

	mcpServer.AddTool(mcp.NewTool("spellcheck_word",
		mcp.WithDescription("Checks the spelling of a single word and returns ranked suggestions when it is misspelled."),
		mcp.WithString("word",
			mcp.Description("The word to check"),
			mcp.Required(),
		),
	), h.HandleWord)

	mcpServer.AddTool(mcp.NewTool("spellcheck_text",
		mcp.WithDescription("Checks the spelling of every word in a block of text and lists the misspelled ones with suggestions."),
		mcp.WithString("text",
			mcp.Description("The text to check"),
			mcp.Required(),
		),
		mcp.WithBoolean("positions",
			mcp.Description("Whether to report line and column numbers (default: false)"),
		),
	), h.HandleText)

	mcpServer.AddTool(mcp.NewTool("spellcheck_file",
		mcp.WithDescription("Checks the spelling of a text file and lists the misspelled words with line, column and suggestions."),
		mcp.WithString("path",
			mcp.Description("The path of the file to check"),
			mcp.Required(),
		),
	), h.HandleFile)

	logger.New("mcp").Debug("Registered spellcheck tools")
}

// HandleWord is the handler for spellcheck_word
func (h *Handlers) HandleWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word, ok := request.Params.Arguments["word"].(string)
	if !ok || strings.TrimSpace(word) == "" {
		return errorResult("word must be a non-empty string"), nil
	}

	res := h.checker.CheckWord(word)
	if res.IsCorrect {
		return textResult(fmt.Sprintf("%q is spelled correctly.", word)), nil
	}
	if len(res.Suggestions) == 0 {
		return textResult(fmt.Sprintf("%q is misspelled. No suggestions available.", word)), nil
	}
	return textResult(fmt.Sprintf("%q is misspelled. Suggestions: %s", word, strings.Join(res.Suggestions, ", "))), nil
}

// HandleText is the handler for spellcheck_text
func (h *Handlers) HandleText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	text, ok := arguments["text"].(string)
	if !ok {
		return errorResult("text must be a string"), nil
	}
	positions, _ := arguments["positions"].(bool)

	if !positions {
		return textResult(summarize(h.checker.CheckText(text))), nil
	}
	results, err := h.checker.CheckReader(strings.NewReader(text))
	if err != nil {
		return errorResult(fmt.Sprintf("error checking text: %v", err)), nil
	}
	return textResult(summarize(results)), nil
}

// HandleFile is the handler for spellcheck_file
func (h *Handlers) HandleFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := request.Params.Arguments["path"].(string)
	if !ok || path == "" {
		return errorResult("path must be a non-empty string"), nil
	}

	checker, ok := h.checker.(interface {
		CheckFile(path string) ([]spell.Result, error)
	})
	if !ok {
		return errorResult("file checks are not supported by this checker"), nil
	}

	results, err := checker.CheckFile(path)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(summarize(results)), nil
}

func summarize(results []spell.Result) string {
	if len(results) == 0 {
		return "No spelling issues found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d spelling issues:\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(&b, "%d. Word: %s\n", i+1, r.Word)
		if r.Line > 0 {
			fmt.Fprintf(&b, "   Line: %d, Column: %d\n", r.Line, r.Column)
		}
		if len(r.Suggestions) > 0 {
			fmt.Fprintf(&b, "   Suggestions: %s\n", strings.Join(r.Suggestions, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	result := textResult(text)
	result.IsError = true
	return result
}
