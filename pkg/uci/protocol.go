package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/walrusbot/walrus/pkg/board"
	"github.com/walrusbot/walrus/pkg/common"
	"github.com/walrusbot/walrus/pkg/eval/pesto"
)

type Engine interface {
	Search(searchParams common.SearchParams) common.SearchInfo
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	position     *board.Position
	out          io.Writer
	thinking     bool
	engineOutput chan string
}

func New(name, author, version string, engine Engine, options []Option, out io.Writer) *Protocol {
	return &Protocol{
		name:     name,
		author:   author,
		version:  version,
		engine:   engine,
		options:  options,
		position: board.MustPositionFromFEN(board.InitialPositionFen),
		out:      out,
	}
}

// Run reads commands from in until quit or end of input. A search in
// progress is always finished and reported before Run returns.
func (uci *Protocol) Run(in io.Reader, logger zerolog.Logger) {
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(in, commands)
	}()

	for {
		select {
		case line, ok := <-uci.engineOutput:
			if ok {
				fmt.Fprintln(uci.out, line)
			} else {
				uci.thinking = false
				uci.engineOutput = nil
			}
		case commandLine, ok := <-commands:
			if !ok {
				uci.waitSearch()
				return
			}
			var err = uci.handle(commandLine)
			if err != nil {
				logger.Error().Err(err).Str("command", commandLine).Msg("uci")
			}
		}
	}
}

func (uci *Protocol) waitSearch() {
	if uci.engineOutput == nil {
		return
	}
	for line := range uci.engineOutput {
		fmt.Fprintln(uci.out, line)
	}
	uci.thinking = false
	uci.engineOutput = nil
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		if commandName == "stop" {
			// fixed-depth searches always run to completion
			return nil
		}
		if commandName == "isready" {
			return uci.isReadyCommand(fields)
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop":
		h = func(fields []string) error { return nil }
	case "d":
		h = uci.displayCommand
	case "eval":
		h = uci.evalCommand
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("empty position command")
	}
	var args = fields
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = board.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = board.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		for _, smove := range args[movesIndex+1:] {
			p, err = p.MakeMoveLAN(smove)
			if err != nil {
				return fmt.Errorf("parse move failed: %w", err)
			}
		}
	}
	uci.position = p
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var depth = parseDepth(fields)
	var position = uci.position
	uci.thinking = true
	var output = make(chan string, 16)
	uci.engineOutput = output
	go func() {
		defer close(output)
		var searchResult = uci.engine.Search(common.SearchParams{
			Position: position,
			Depth:    depth,
			Reporter: reporter{output: output},
		})
		if len(searchResult.MainLine) != 0 {
			output <- fmt.Sprintf("bestmove %v", searchResult.MainLine[0])
		} else {
			output <- "bestmove 0000"
		}
	}()
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.position = board.MustPositionFromFEN(board.InitialPositionFen)
	return nil
}

func (uci *Protocol) displayCommand(fields []string) error {
	fmt.Fprintf(uci.out, "info string fen %v\n", uci.position.FEN())
	return nil
}

func (uci *Protocol) evalCommand(fields []string) error {
	var b = pesto.Trace(uci.position)
	fmt.Fprintf(uci.out, "info string eval %v mg %v eg %v phase %v/%v\n",
		b.Score, b.Middle, b.End, b.MgPhase, b.EgPhase)
	return nil
}

type reporter struct {
	output chan<- string
}

func (r reporter) CurrentMove(index int, move common.Move) {
	r.output <- fmt.Sprintf("info currmove %v currmovenumber %v", move, index+1)
}

func (r reporter) BestLine(si common.SearchInfo) {
	r.output <- searchInfoToUci(si)
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv %v", common.LineString(si.MainLine))
	}
	return sb.String()
}

func parseDepth(args []string) int {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			var depth, err = strconv.Atoi(args[i+1])
			if err == nil {
				return depth
			}
		}
	}
	return 0
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
