package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	actionCheck    = "check"
	actionAddWord  = "add_word"
	actionIgnore   = "ignore"
	actionUnignore = "unignore"
	actionStats    = "stats"
	actionHealth   = "health"
)

// Server handles the IPC for spell checks
type Server struct {
	checker      spell.IChecker
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	log          *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w.
// A nil cfg uses the defaults.
func NewServer(checker spell.IChecker, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		checker: checker,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		log:     logger.New("server"),
	}
}

// Start signals readiness and serves requests until the input is closed.
// A clean EOF returns nil.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")

	if err := s.sendResponse(map[string]string{"status": "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return err
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one raw message and dispatches it by action.
// Only write failures are returned; bad requests are answered with an error.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	s.requestCount++

	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.log.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", 400)
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	action := strings.ToLower(strings.TrimSpace(req.Action))
	if action == "" {
		action = actionCheck
	}
	s.log.Debug("Request", "id", req.ID, "action", action)

	switch action {
	case actionCheck:
		return s.handleCheck(req)
	case actionAddWord, actionIgnore, actionUnignore:
		return s.handleWordAction(req, action)
	case actionStats:
		return s.sendResponse(ActionResponse{ID: req.ID, Status: "ok", Stats: s.checker.Stats()})
	case actionHealth:
		return s.sendResponse(ActionResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

// handleCheck checks either a single word or a block of text.
// A word check always returns one result; a text check returns only misspellings.
func (s *Server) handleCheck(req Request) error {
	if req.Word == "" && req.Text == "" {
		return s.sendError(req.ID, "missing 'w' or 't' parameter", 400)
	}
	if msg, ok := s.validate(req); !ok {
		return s.sendError(req.ID, msg, 400)
	}

	start := time.Now()

	var results []spell.Result
	switch {
	case req.Word != "":
		results = []spell.Result{s.checker.CheckWord(req.Word)}
	case req.Lines:
		var err error
		results, err = s.checker.CheckReader(strings.NewReader(req.Text))
		if err != nil {
			s.log.Errorf("Checking text: %v", err)
			return s.sendError(req.ID, "failed to check text", 500)
		}
	default:
		results = s.checker.CheckText(req.Text)
	}

	response := CheckResponse{
		ID:        req.ID,
		Results:   toCheckResults(results),
		Count:     len(results),
		TimeTaken: time.Since(start).Microseconds(),
	}
	s.log.Debugf("Took [ %dus ] for request %s", response.TimeTaken, req.ID)
	return s.sendResponse(response)
}

func (s *Server) handleWordAction(req Request, action string) error {
	if strings.TrimSpace(req.Word) == "" {
		return s.sendError(req.ID, "missing 'w' parameter", 400)
	}
	if msg, ok := s.validate(req); !ok {
		return s.sendError(req.ID, msg, 400)
	}

	var changed bool
	switch action {
	case actionAddWord:
		changed = s.checker.AddWord(req.Word)
	case actionIgnore:
		changed = s.checker.AddIgnoreWord(req.Word)
	case actionUnignore:
		changed = s.checker.RemoveIgnoreWord(req.Word)
	}
	s.log.Debug("Word action", "action", action, "word", req.Word, "changed", changed)
	return s.sendResponse(ActionResponse{ID: req.ID, Status: "ok", Changed: changed})
}

// validate enforces the configured input limits
func (s *Server) validate(req Request) (string, bool) {
	if limit := s.config.Server.MaxWordLength; limit > 0 && utf8.RuneCountInString(req.Word) > limit {
		return fmt.Sprintf("word exceeds maximum length of %d characters", limit), false
	}
	if limit := s.config.Server.MaxTextLength; limit > 0 && len(req.Text) > limit {
		return fmt.Sprintf("text exceeds maximum length of %d bytes", limit), false
	}
	return "", true
}

func toCheckResults(results []spell.Result) []CheckResult {
	out := make([]CheckResult, len(results))
	for i, r := range results {
		ranks := utils.CreateRankList(len(r.Suggestions))
		suggestions := make([]Suggestion, len(r.Suggestions))
		for j, w := range r.Suggestions {
			suggestions[j] = Suggestion{Word: w, Rank: ranks[j]}
		}
		out[i] = CheckResult{
			Word:        r.Word,
			Correct:     r.IsCorrect,
			Suggestions: suggestions,
			Line:        r.Line,
			Column:      r.Column,
		}
	}
	return out
}

// sendResponse encodes one message and flushes it to the client
func (s *Server) sendResponse(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return err
	}
	return s.writer.Flush()
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.sendResponse(CheckError{ID: id, Error: message, Code: code})
}
