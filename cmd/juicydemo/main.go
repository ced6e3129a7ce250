package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"sigs.k8s.io/yaml"

	"github.com/flitsinc/juicy/input"
	"github.com/flitsinc/juicy/internal/logging"
	"github.com/flitsinc/juicy/juicy"
	"github.com/flitsinc/juicy/treespec"
	"github.com/flitsinc/juicy/value"
)

func init() {
	// Put JUICY_BUDGET/JUICY_LOG_LEVEL in .env and this will load them.
	godotenv.Overload()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "parse":
		cmdParse(os.Args[2:])
	case "stream":
		cmdStream(os.Args[2:])
	case "validate":
		cmdValidate(os.Args[2:])
	default:
		printUsage()
	}
}

func printUsage() {
	fmt.Println("usage: juicydemo <parse|stream|validate> ...")
	fmt.Println("  juicydemo parse <file.json>")
	fmt.Println("  juicydemo stream <spec.json|spec.yaml> <file.json>")
	fmt.Println("  juicydemo validate <spec.json|spec.yaml>")
}

func budgetFromEnv() int64 {
	if s := os.Getenv("JUICY_BUDGET"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

func loggerFromEnv() *logging.Logger {
	lvl := os.Getenv("JUICY_LOG_LEVEL")
	if lvl == "" {
		return nil
	}
	l, err := logging.NewWithStrings(os.Stderr, lvl, "logfmt")
	if err != nil {
		fmt.Fprintf(os.Stderr, "juicydemo: %v\n", err)
		return nil
	}
	return l
}

func cmdParse(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: juicydemo parse <file.json>")
		return
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "juicydemo: %v\n", err)
		os.Exit(1)
	}

	opts := []juicy.Option{juicy.WithBudget(budgetFromEnv())}
	if l := loggerFromEnv(); l != nil {
		opts = append(opts, juicy.WithLogger(l))
	}

	outcome := juicy.ParseInit(data, opts...)
	for outcome.Kind == juicy.OutcomeIter {
		outcome = juicy.ParseIter(data, outcome.Continuation)
	}

	switch outcome.Kind {
	case juicy.OutcomeOk:
		printValue(outcome.Value)
	default:
		fmt.Fprintf(os.Stderr, "juicydemo: parse failed: %v\n", outcome.Err)
		os.Exit(1)
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: juicydemo validate <spec.json|spec.yaml>")
		return
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "juicydemo: %v\n", err)
		os.Exit(1)
	}
	if err := juicy.ValidateSpec(toJSONSpec(args[0], raw)); err != nil {
		fmt.Fprintf(os.Stderr, "juicydemo: invalid spec: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func cmdStream(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: juicydemo stream <spec.json|spec.yaml> <file.json>")
		return
	}
	specRaw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "juicydemo: %v\n", err)
		os.Exit(1)
	}
	tree, err := loadSpec(args[0], specRaw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "juicydemo: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "juicydemo: %v\n", err)
		os.Exit(1)
	}

	opts := []juicy.Option{juicy.WithBudget(budgetFromEnv())}
	if l := loggerFromEnv(); l != nil {
		opts = append(opts, juicy.WithLogger(l))
	}

	c := juicy.StreamParseInit(tree, opts...)
	// Demonstrate chunked delivery by splitting the file into four pieces
	// instead of handing it over all at once.
	chunks := splitIntoChunks(data, 4)

	var outcome juicy.StreamOutcome
	for _, ch := range chunks {
		outcome = juicy.StreamParseIter([]juicy.Chunk{ch}, c)
		for _, y := range outcome.Yields {
			fmt.Printf("yield %s:\n", formatPath(y.Path))
			printValue(y.Value)
		}
		if outcome.Kind == juicy.StreamOk || outcome.Kind == juicy.StreamUnexpected {
			break
		}
	}

	switch outcome.Kind {
	case juicy.StreamOk:
		fmt.Println("document:")
		printValue(outcome.Value)
	case juicy.StreamAwaitInput:
		fmt.Println("awaiting more input than this demo supplied")
	default:
		if outcome.Err != nil {
			fmt.Fprintf(os.Stderr, "juicydemo: stream failed: %v\n", outcome.Err)
			os.Exit(1)
		}
	}
}

func splitIntoChunks(data []byte, n int) []juicy.Chunk {
	if n < 1 || len(data) == 0 {
		return []juicy.Chunk{{Offset: 0, Data: data}}
	}
	size := (len(data) + n - 1) / n
	var chunks []juicy.Chunk
	for off := 0; off < len(data); off += size {
		end := off + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, juicy.Chunk{Offset: input.Position(off), Data: data[off:end]})
	}
	return chunks
}

func formatPath(path []juicy.PathStep) string {
	out := "$"
	for _, s := range path {
		if s.IsIndex {
			out += fmt.Sprintf("[%d]", s.Index)
		} else {
			out += "." + s.Key
		}
	}
	return out
}

func loadSpec(path string, raw []byte) (*treespec.Spec, error) {
	if isYAMLPath(path) {
		return treespec.FromYAML(raw)
	}
	return treespec.FromJSON(raw)
}

func toJSONSpec(path string, raw []byte) []byte {
	if !isYAMLPath(path) {
		return raw
	}
	jsonBytes, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return raw
	}
	return jsonBytes
}

func isYAMLPath(path string) bool {
	n := len(path)
	return (n >= 5 && path[n-5:] == ".yaml") || (n >= 4 && path[n-4:] == ".yml")
}

// printValue dumps a decoded value.Value as YAML for readability; it is
// demo-only scaffolding, not part of the library's API surface.
func printValue(v value.Value) {
	plain := toPlain(v)
	out, err := yaml.Marshal(plain)
	if err != nil {
		fmt.Printf("%#v\n", v)
		return
	}
	fmt.Print(string(out))
}

func toPlain(v value.Value) any {
	switch t := v.(type) {
	case nil:
		return nil
	case value.Null:
		return nil
	case value.Bool:
		return bool(t)
	case value.Int64:
		return int64(t)
	case value.Float64:
		return float64(t)
	case *value.BigInt:
		return t.Int.String()
	case value.String:
		return string(t)
	case value.Atom:
		return string(t)
	case value.Streamed:
		return "<streamed>"
	case *value.Array:
		out := make([]any, t.Len())
		for i := 0; i < t.Len(); i++ {
			out[i] = toPlain(t.At(i))
		}
		return out
	case *value.Map:
		out := make(map[string]any)
		for _, k := range t.Keys() {
			mv, _ := t.Get(k)
			out[k] = toPlain(mv)
		}
		return out
	default:
		return fmt.Sprintf("%v", t)
	}
}
