// thriftdump inspects compact-protocol records without a schema: field ids
// and wire types come straight from the headers, values are decoded by wire
// shape alone.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirudhraja/thriftlite/wire"
)

var (
	hexInput bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "thriftdump",
		Short: "Inspect compact-protocol records without a schema",
		Long: `thriftdump decodes compact-protocol structs generically, printing each
field with the id and wire type found in its header. No schema or
registry is needed; nested structs and containers are walked by wire
shape alone.`,
	}

	// dumpCmd represents the dump command
	dumpCmd = &cobra.Command{
		Use:   "dump [file]",
		Short: "Decode one record and print its field tree",
		Long:  "Decode the record at the start of the input and print every field. Reads stdin when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDump,
	}

	// skipCmd represents the skip command
	skipCmd = &cobra.Command{
		Use:   "skip [file]",
		Short: "Measure the records in a stream of concatenated structs",
		Long:  "Step over every record in the input using the skip engine and print each record's byte size. Validates framing without decoding values.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSkip,
	}
)

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(skipCmd)

	rootCmd.PersistentFlags().BoolVar(&hexInput, "hex", false, "treat the input as hex text instead of raw bytes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput loads the record bytes from the file argument or stdin.
func readInput(args []string) ([]byte, error) {
	var raw []byte
	var err error

	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %v", err)
	}

	if hexInput {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
				return -1
			}
			return r
		}, string(raw))
		raw, err = hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %v", err)
		}
	}

	return raw, nil
}

// runDump handles the dump command
func runDump(_ *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	fields, consumed, err := wire.DecodeGenericStruct(data)
	if err != nil {
		return fmt.Errorf("decode failed: %v", err)
	}

	printFields(fields, 0)
	if consumed < len(data) {
		fmt.Printf("(%d trailing bytes after the record)\n", len(data)-consumed)
	}
	return nil
}

// runSkip handles the skip command
func runSkip(_ *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	offset := 0
	record := 1
	for offset < len(data) {
		n, err := wire.SkipStruct(data[offset:])
		if err != nil {
			return fmt.Errorf("record %d at offset %d: %v", record, offset, err)
		}
		fmt.Printf("record %d: offset %d, %d bytes\n", record, offset, n)
		offset += n
		record++
	}
	fmt.Printf("%d record(s), %d bytes total\n", record-1, offset)
	return nil
}

// printFields prints raw fields as an indented tree.
func printFields(fields []wire.RawField, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, f := range fields {
		switch v := f.Value.(type) {
		case []wire.RawField:
			fmt.Printf("%sfield %d (struct):\n", pad, f.ID)
			printFields(v, indent+1)
		case []interface{}:
			fmt.Printf("%sfield %d (%s, %d elements):\n", pad, f.ID, f.Type, len(v))
			printElements(v, indent+1)
		case []wire.RawMapEntry:
			fmt.Printf("%sfield %d (map, %d entries):\n", pad, f.ID, len(v))
			printEntries(v, indent+1)
		case []byte:
			fmt.Printf("%sfield %d (%s): %s\n", pad, f.ID, f.Type, formatBytes(v))
		default:
			fmt.Printf("%sfield %d (%s): %v\n", pad, f.ID, f.Type, f.Value)
		}
	}
}

// printElements prints container elements, recursing into nested shapes.
func printElements(elements []interface{}, indent int) {
	pad := strings.Repeat("  ", indent)
	for i, element := range elements {
		switch v := element.(type) {
		case []wire.RawField:
			fmt.Printf("%s[%d] struct:\n", pad, i)
			printFields(v, indent+1)
		case []interface{}:
			fmt.Printf("%s[%d] container, %d elements:\n", pad, i, len(v))
			printElements(v, indent+1)
		case []wire.RawMapEntry:
			fmt.Printf("%s[%d] map, %d entries:\n", pad, i, len(v))
			printEntries(v, indent+1)
		case []byte:
			fmt.Printf("%s[%d] %s\n", pad, i, formatBytes(v))
		default:
			fmt.Printf("%s[%d] %v\n", pad, i, element)
		}
	}
}

// printEntries prints map entries.
func printEntries(entries []wire.RawMapEntry, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, entry := range entries {
		fmt.Printf("%s%s -> %s\n", pad, formatValue(entry.Key), formatValue(entry.Value))
	}
}

// formatValue renders one scalar-ish value inline; nested shapes collapse to a
// summary.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case []byte:
		return formatBytes(val)
	case []wire.RawField:
		return fmt.Sprintf("struct(%d fields)", len(val))
	case []interface{}:
		return fmt.Sprintf("container(%d elements)", len(val))
	case []wire.RawMapEntry:
		return fmt.Sprintf("map(%d entries)", len(val))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatBytes prints binary values as a quoted string when printable, hex
// otherwise.
func formatBytes(b []byte) string {
	printable := true
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			printable = false
			break
		}
	}
	if printable {
		return fmt.Sprintf("%q", string(b))
	}
	return "0x" + hex.EncodeToString(b)
}
