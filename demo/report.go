package demo

import (
	"fmt"
	"io"

	"github.com/colorfulnotion/xbit/log"
	"github.com/colorfulnotion/xbit/xbiterrors"
)

// Fixed demonstration inputs.
const (
	ReverseInput uint32 = 0b10110000
	RotateInput  uint32 = 0xC0002003
	Shift        uint32 = 4
)

const (
	VariantFull    = "full"
	VariantMinimal = "minimal"
)

type Config struct {
	Variant string
	Engine  string
}

func DefaultConfig() Config {
	return Config{Variant: VariantFull, Engine: EngineSoftware}
}

// Results holds every value the report prints.
type Results struct {
	ReverseInput uint32
	Reversed     uint32
	RotateInput  uint32
	Shift        uint32
	RotatedRight uint32
	RotatedLeft  uint32
}

// Compute evaluates the fixed inputs on engine.
func Compute(engine Engine) (Results, error) {
	res := Results{ReverseInput: ReverseInput, RotateInput: RotateInput, Shift: Shift}
	var err error
	if res.Reversed, err = engine.BitReverse32(ReverseInput); err != nil {
		return res, err
	}
	if res.RotatedRight, err = engine.RotateRight32(RotateInput, Shift); err != nil {
		return res, err
	}
	if res.RotatedLeft, err = engine.RotateLeft32(RotateInput, Shift); err != nil {
		return res, err
	}
	log.Debug(log.DemoMonitoring, "computed", "engine", engine.Name(),
		"reversed", fmt.Sprintf("0x%08X", res.Reversed),
		"right", fmt.Sprintf("0x%08X", res.RotatedRight),
		"left", fmt.Sprintf("0x%08X", res.RotatedLeft))
	return res, nil
}

// Run computes the demonstration values and writes the report to w.
func Run(w io.Writer, cfg Config) error {
	if cfg.Variant != VariantFull && cfg.Variant != VariantMinimal {
		return fmt.Errorf("%w: %q", xbiterrors.ErrEBadVariant, cfg.Variant)
	}
	engine, err := NewEngine(cfg.Engine)
	if err != nil {
		return err
	}
	res, err := Compute(engine)
	if err != nil {
		return err
	}
	return Write(w, cfg.Variant, res)
}

// Write renders res in the given variant.
func Write(w io.Writer, variant string, res Results) error {
	if variant != VariantFull && variant != VariantMinimal {
		return fmt.Errorf("%w: %q", xbiterrors.ErrEBadVariant, variant)
	}
	if variant == VariantFull {
		if _, err := fmt.Fprintf(w, "Test REVERSE\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Input:    0x%08X\nReversed: 0x%08X\n", res.ReverseInput, res.Reversed); err != nil {
		return err
	}
	if variant != VariantFull {
		return nil
	}
	_, err := fmt.Fprintf(w, "Test ROTATE\nInput: 0x%08X\nRIGHT: 0x%08X\nLEFT:  0x%08X\n",
		res.RotateInput, res.RotatedRight, res.RotatedLeft)
	return err
}
