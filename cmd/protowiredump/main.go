// Command protowiredump renders an arbitrary Protocol Buffers wire-format
// payload as a tree of tag/wire-type/payload rows, without any schema: it
// does not know field names or types, only what the bytes themselves say.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	protowire "github.com/kevin-logan/protowire"
	"github.com/kevin-logan/protowire/internal/hexdump"
)

var (
	maxDepth int
	hexMode  bool
	verbose  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protowiredump [file]",
		Short: "Dump a Protocol Buffers wire-format payload as tag/wire-type rows",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 32, "maximum group/message nesting depth to render")
	cmd.Flags().BoolVarP(&hexMode, "hex", "x", false, "print a hexdump of each length-delimited payload's raw bytes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parse progress to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger = zap.NewNop()
	}
	if err != nil {
		return fmt.Errorf("protowiredump: building logger: %w", err)
	}
	defer logger.Sync()

	data, err := readInput(args)
	if err != nil {
		return fmt.Errorf("protowiredump: %w", err)
	}
	logger.Debug("read input", zap.Int("bytes", len(data)))

	msg := protowire.NewMessageFromBytes(data)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("depth", "field", "wire type", "bytes", "value")

	err = dumpMessage(table, logger, msg, 0)
	if err != nil {
		return fmt.Errorf("protowiredump: %w", err)
	}
	return table.Render()
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func dumpMessage(table *tablewriter.Table, logger *zap.Logger, msg protowire.Message, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("nesting exceeds max-depth %d", maxDepth)
	}
	return msg.Each(func(f protowire.Field) (bool, error) {
		if err := dumpField(table, logger, f, depth); err != nil {
			return false, err
		}
		return true, nil
	})
}

func dumpField(table *tablewriter.Table, logger *zap.Logger, f protowire.Field, depth int) error {
	logger.Debug("field", zap.Uint64("id", f.FieldID()), zap.String("wire_type", f.WireType().String()))

	row := []string{fmt.Sprint(depth), fmt.Sprint(f.FieldID()), f.WireType().String(), fmt.Sprint(f.ByteLen())}

	switch f.WireType() {
	case protowire.WireVarint:
		v, _ := f.AsVarint()
		row = append(row, fmt.Sprint(v.Get()))
		table.Append(row)

	case protowire.WireFixed32:
		v, _ := f.AsFixed32()
		row = append(row, fmt.Sprintf("0x%08x", v.Get()))
		table.Append(row)

	case protowire.WireFixed64:
		v, _ := f.AsFixed64()
		row = append(row, fmt.Sprintf("0x%016x", v.Get()))
		table.Append(row)

	case protowire.WireBytes:
		v, _ := f.AsLengthDelimited()
		row = append(row, describeLengthDelimited(v))
		table.Append(row)
		if hexMode {
			fmt.Println(hexdump.Dump(v.Bytes()))
		}
		if sub, ok := tryParseAsMessage(v); ok {
			return dumpMessage(table, logger, sub, depth+1)
		}

	case protowire.WireStartGroup:
		v, _ := f.AsGroup()
		row = append(row, fmt.Sprintf("%d fields", len(v.Fields())))
		table.Append(row)
		if depth+1 > maxDepth {
			return fmt.Errorf("nesting exceeds max-depth %d", maxDepth)
		}
		for _, gf := range v.Fields() {
			if err := dumpField(table, logger, gf, depth+1); err != nil {
				return err
			}
		}

	default:
		row = append(row, "")
		table.Append(row)
	}
	return nil
}

// describeLengthDelimited prefers a UTF-8 string preview, falling back to a
// byte count for binary payloads.
func describeLengthDelimited(v protowire.LengthDelimited) string {
	if s, err := v.String(); err == nil {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%d bytes", len(v.Bytes()))
}

// tryParseAsMessage is a crude heuristic: this tool has no schema, so it
// cannot know whether a length-delimited field is an embedded message, a
// string, or opaque bytes. It recurses only when the bytes are not valid
// UTF-8 (any valid UTF-8 payload, printable or not, is left as a string)
// and parse cleanly as a whole sequence of fields with no trailing garbage,
// erring toward not exploding string/bytes fields into spurious sub-tables.
func tryParseAsMessage(v protowire.LengthDelimited) (protowire.Message, bool) {
	if _, err := v.String(); err == nil {
		return protowire.Message{}, false
	}
	sub := v.Message()
	fields, err := sub.ParseStrict()
	if err != nil || len(fields) == 0 {
		return protowire.Message{}, false
	}
	return sub, true
}
