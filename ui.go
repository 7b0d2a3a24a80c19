package main

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/manifoldco/promptui"
)

func confirmOverwrite(path string) bool {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s exists, overwrite", path),
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

func (p *TypePatcher) Interactive() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "[symfix]$ ",
		HistoryFile:       "/tmp/symfix_history.txt",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			switch r {
			case readline.CharCtrlZ:
				return r, false
			}
			return r, true
		},
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	prev := ""

	for {
		rl.SetPrompt(fmt.Sprintf("[%ssymfix%s:%s%d%s match]$ ", ColorCyan, ColorReset, ColorCyan, len(p.Matches()), ColorReset))

		req, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			continue
		}

		if req == "" {
			if prev == "" {
				continue
			}
			req = prev
		}

		if req == "q" || req == "exit" || req == "quit" {
			break
		}

		prev = req

		if err := p.cmdExec(req); err != nil {
			LogError(err.Error())
		}
	}
}
