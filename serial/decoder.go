// Package serial reads the fitness controller attached over a serial port and
// turns its byte stream into commands.
package serial

import "strings"

// Command is one decoded controller command.
type Command int

const (
	CmdNone Command = iota
	CmdPrimary
	CmdSecondaryM
	CmdSecondaryP
	CmdJump
	CmdStep
	CmdPickUp
	CmdPause
	CmdResume
)

var commandNames = map[Command]string{
	CmdNone:       "none",
	CmdPrimary:    "primary",
	CmdSecondaryM: "secondary_m",
	CmdSecondaryP: "secondary_p",
	CmdJump:       "jump",
	CmdStep:       "step",
	CmdPickUp:     "pick_up",
	CmdPause:      "pause",
	CmdResume:     "resume",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

var singles = map[byte]Command{
	'J': CmdPrimary,
	'M': CmdSecondaryM,
	'P': CmdSecondaryP,
	'W': CmdJump,
	' ': CmdJump,
	'D': CmdStep,
	'I': CmdPickUp,
}

var keywords = map[string]Command{
	"PAUSE":  CmdPause,
	"RESUME": CmdResume,
}

// Decoder splits the controller stream into commands. Single letters are
// commands of their own; PAUSE and RESUME arrive spelled out, so a run of
// bytes that could still become one of them is held back until it either
// completes or breaks. Input is case-insensitive. Anything else is dropped.
type Decoder struct {
	word []byte
}

// Feed decodes a chunk. A held run of two or more bytes survives to the next
// chunk; a lone trailing byte is decoded right away.
func (d *Decoder) Feed(data []byte) []Command {
	var out []Command
	for _, b := range data {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		d.word = append(d.word, b)
		if cmd, ok := keywords[string(d.word)]; ok {
			out = append(out, cmd)
			d.word = d.word[:0]
			continue
		}
		out = d.settle(out)
	}
	if len(d.word) == 1 {
		out = d.Flush(out)
	}
	return out
}

// Flush gives up on a held run and decodes its bytes one by one.
func (d *Decoder) Flush(out []Command) []Command {
	for _, b := range d.word {
		if cmd, ok := singles[b]; ok {
			out = append(out, cmd)
		}
	}
	d.word = d.word[:0]
	return out
}

// Pending reports whether bytes are being held back.
func (d *Decoder) Pending() bool {
	return len(d.word) > 0
}

// settle peels bytes off the front of the run until what is left could still
// grow into a keyword.
func (d *Decoder) settle(out []Command) []Command {
	for len(d.word) > 0 && !keywordPrefix(string(d.word)) {
		if cmd, ok := singles[d.word[0]]; ok {
			out = append(out, cmd)
		}
		d.word = append(d.word[:0], d.word[1:]...)
	}
	return out
}

func keywordPrefix(s string) bool {
	for kw := range keywords {
		if strings.HasPrefix(kw, s) {
			return true
		}
	}
	return false
}
