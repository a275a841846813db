package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

const replHelp = `Lines are shaped with the current settings. Commands start with a colon:
  :features LIST   set the font features, e.g. :features liga=0,+kern
  :direction DIR   set the direction (ltr, rtl, ttb, btt) or clear it when empty
  :format FORMAT   set the output format (text, json, table)
  :compare         toggle the comparison against the pure-Go shaper
  :help            show this help
  :quit            leave`

// REPL shapes the lines read from the terminal until EOF or :quit.
func (s *shaper) REPL() error {
	repl, err := readline.New("hb > ")
	if err != nil {
		return err
	}
	defer repl.Close()

	pterm.Info.Println("Quit with <ctrl>D or :quit")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			quit, err := s.execute(strings.TrimSpace(line[1:]))
			if err != nil {
				pterm.Error.Println(err)
			} else if quit {
				break
			}
			continue
		}
		if err := s.Shape(os.Stdout, line); err != nil {
			pterm.Error.Println(err)
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func (s *shaper) execute(line string) (bool, error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit", "q":
		return true, nil
	case "help", "h":
		pterm.Println(replHelp)
	case "features":
		return false, s.setFeatures(arg)
	case "direction":
		return false, s.setDirection(arg)
	case "format":
		switch arg {
		case "text", "json", "table":
			s.format = arg
		default:
			return false, fmt.Errorf("invalid output format: %s", arg)
		}
	case "compare":
		s.compare = !s.compare
		pterm.Printf("compare: %v\n", s.compare)
	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}
	return false, nil
}
