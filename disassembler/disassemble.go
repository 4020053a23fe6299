package disassembler

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Instruction represents a single decode attempt at a specific address.
type Instruction struct {
	Address  uint32
	Op       uint16
	Form     Form
	Mnemonic string
	Operands string
	// Size is the number of bytes the attempt consumed, extension words included.
	Size  uint32
	Valid bool
}

// String renders the instruction as one listing line: the mnemonic padded to
// eight columns, a space, the operands and a newline. Unrecognised words give "???".
func (i Instruction) String() string {
	if !i.Valid {
		return "???\n"
	}
	return fmt.Sprintf("%-8s %s\n", i.Mnemonic, i.Operands)
}

// Decoder classifies and renders instruction words. A Decoder holds no state
// between calls and is safe for concurrent use with separate cursors.
type Decoder struct {
	log   *logrus.Logger
	fixes bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sends decoder diagnostics to log. Per-candidate entries are only
// built when log is at debug level.
func WithLogger(log *logrus.Logger) Option {
	return func(d *Decoder) {
		if log != nil {
			d.log = log
		}
	}
}

// WithCorrections renders the encodings the classic output gets wrong the way
// the processor manual does: rotate directions, EXG operand order, CCR targets,
// TST sizes, STOP and TRAP immediates, and the register-direct forms that ADD,
// SUB, AND and OR would otherwise shadow.
func WithCorrections() Option {
	return func(d *Decoder) {
		d.fixes = true
	}
}

// New returns a Decoder. Without options it logs nothing and reproduces the
// classic output exactly.
func New(opts ...Option) *Decoder {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	quiet.SetLevel(logrus.PanicLevel)
	d := &Decoder{log: quiet}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Decode reads one instruction from c. The first word is tried against each
// form in catalogue order; a form that matches the bit pattern but rejects the
// fields passes the same word on to the next. Decode never fails: words no
// form accepts come back with Valid unset, having consumed only that word.
func (d *Decoder) Decode(c *Cursor) Instruction {
	start := c.Position()
	inst := Instruction{Address: c.Address()}
	inst.Op = c.NextWord()
	debug := d.log.IsLevelEnabled(logrus.DebugLevel)

	for f := FormNone + 1; f < formCount; f++ {
		desc := &catalogue[f]
		if inst.Op&desc.mask != desc.value {
			continue
		}

		m := match{
			form:  f,
			word:  inst.Op,
			name:  desc.mnemonic,
			cur:   c,
			fixes: d.fixes,
		}
		if name, ok := classicMnemonics[f]; ok && !d.fixes {
			m.name = name
		}

		mn, ops, ok := desc.decode(&m)
		if !ok {
			if debug {
				d.candidate(f, inst).Debug("candidate rejected")
			}
			continue
		}
		if m.err != nil {
			d.log.WithError(m.err).WithFields(logrus.Fields{
				"form":    f.String(),
				"address": fmt.Sprintf("%08X", inst.Address),
			}).Error("operand could not be rendered")
		}

		if debug {
			d.candidate(f, inst).Debug("decoded")
		}

		inst.Form = f
		inst.Mnemonic = mn
		inst.Operands = ops
		inst.Valid = true
		break
	}

	if !inst.Valid && d.log.IsLevelEnabled(logrus.WarnLevel) {
		d.log.WithFields(logrus.Fields{
			"word":    fmt.Sprintf("%04X", inst.Op),
			"address": fmt.Sprintf("%08X", inst.Address),
		}).Warn("no instruction form matches")
	}
	inst.Size = uint32(c.Position() - start)
	return inst
}

func (d *Decoder) candidate(f Form, inst Instruction) *logrus.Entry {
	return d.log.WithFields(logrus.Fields{
		"form":    f.String(),
		"index":   int(f),
		"word":    fmt.Sprintf("%04X", inst.Op),
		"address": fmt.Sprintf("%08X", inst.Address),
	})
}

var defaultDecoder = New()

// DecodeOne decodes the instruction at the cursor with classic output and
// returns its address, its listing text and whether it was recognised.
func DecodeOne(c *Cursor) (uint32, string, bool) {
	inst := defaultDecoder.Decode(c)
	return inst.Address, inst.String(), inst.Valid
}
