// Command curvetable reads a term-structure definition (YAML, from a file
// or stdin) holding one curve representation and prints the equivalent
// curve in all four representations.
//
// Usage:
//
//	curvetable -input curve.yaml [-format table|json]
//
// Input shape:
//
//	input: DR                    # DR | DF | FR | FF
//	spot_compounding: 2          # periods/year, or "continuous" (default 2)
//	forward_compounding: continuous
//	settlement: 2025-03-19       # required only for date-keyed nodes
//	day_count: ACT/365F          # used with date-keyed nodes
//	nodes:
//	  - {ttm: 1, value: 0.0300}  # each node: one of ttm | tenor | date
//	  - {tenor: 2Y, value: 0.0315}
//	  - {date: 2028-03-19, value: 0.0330}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meenmo/ratecurve/curve"
	"github.com/meenmo/ratecurve/rates"
)

type curveFile struct {
	Input              string      `yaml:"input"`
	SpotCompounding    compounding `yaml:"spot_compounding"`
	ForwardCompounding compounding `yaml:"forward_compounding"`
	Settlement         string      `yaml:"settlement"`
	DayCount           string      `yaml:"day_count"`
	Nodes              []nodeSpec  `yaml:"nodes"`
}

type nodeSpec struct {
	TTM   *float64 `yaml:"ttm"`
	Tenor string   `yaml:"tenor"`
	Date  string   `yaml:"date"`
	Value float64  `yaml:"value"`
}

// compounding accepts either an integer frequency or the string
// "continuous" in YAML.
type compounding struct {
	rates.Compounding
	set bool
}

func (c *compounding) UnmarshalYAML(node *yaml.Node) error {
	c.set = true
	var freq int
	if err := node.Decode(&freq); err == nil {
		c.Compounding = rates.Periodic(freq)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("compounding must be an integer or \"continuous\"")
	}
	if strings.EqualFold(strings.TrimSpace(s), "continuous") {
		c.Compounding = rates.Continuous
		return nil
	}
	return fmt.Errorf("compounding must be an integer or \"continuous\", got %q", s)
}

type rowJSON struct {
	TTM            float64  `json:"ttm"`
	DiscountRate   float64  `json:"discount_rate"`
	DiscountFactor float64  `json:"discount_factor"`
	ForwardFactor  *float64 `json:"forward_factor"`
	ForwardRate    *float64 `json:"forward_rate"`
}

func main() {
	inputPath := flag.String("input", "", "YAML input path (reads stdin if omitted)")
	format := flag.String("format", "table", "Output format: table or json")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: curvetable -input <path> [-format table|json]")
		fmt.Fprintln(os.Stderr, "Convert a curve between spot/forward rate/factor representations.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: curvetable -input <path> [-format table|json]")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	var in curveFile
	if err := yaml.Unmarshal(raw, &in); err != nil {
		exitError(fmt.Sprintf("parse YAML: %v", err))
	}

	c, err := build(in)
	if err != nil {
		exitError(err.Error())
	}

	switch *format {
	case "json":
		rows := make([]rowJSON, 0, c.Len())
		for _, n := range c.Nodes() {
			rows = append(rows, rowJSON{
				TTM:            n.TTM,
				DiscountRate:   n.DiscountRate,
				DiscountFactor: n.DiscountFactor,
				ForwardFactor:  n.ForwardFactor,
				ForwardRate:    n.ForwardRate,
			})
		}
		b, _ := json.Marshal(rows)
		fmt.Println(string(b))
	case "table":
		printTable(c)
	default:
		exitError(fmt.Sprintf("unknown format %q (want table or json)", *format))
	}
}

func build(in curveFile) (*curve.Curve, error) {
	if len(in.Nodes) == 0 {
		return nil, fmt.Errorf("no nodes in input")
	}

	// Semiannual unless the input says otherwise, both columns.
	spot := in.SpotCompounding.Compounding
	if !in.SpotCompounding.set {
		spot = rates.Semiannual
	}
	forward := in.ForwardCompounding.Compounding
	if !in.ForwardCompounding.set {
		forward = rates.Semiannual
	}

	dc := curve.DayCount(in.DayCount)
	if in.DayCount == "" {
		dc = curve.Act365F
	}

	var settlement time.Time
	if in.Settlement != "" {
		var err error
		settlement, err = time.Parse("2006-01-02", in.Settlement)
		if err != nil {
			return nil, fmt.Errorf("invalid settlement %q: %v", in.Settlement, err)
		}
	}

	values := make([]float64, len(in.Nodes))
	ttms := make([]float64, len(in.Nodes))
	for i, n := range in.Nodes {
		ttm, err := resolveTTM(n, settlement, dc)
		if err != nil {
			return nil, fmt.Errorf("node %d: %v", i, err)
		}
		ttms[i] = ttm
		values[i] = n.Value
	}

	return curve.Build(curve.Representation(in.Input), values, ttms, spot, forward)
}

func resolveTTM(n nodeSpec, settlement time.Time, dc curve.DayCount) (float64, error) {
	keyed := 0
	if n.TTM != nil {
		keyed++
	}
	if n.Tenor != "" {
		keyed++
	}
	if n.Date != "" {
		keyed++
	}
	if keyed != 1 {
		return 0, fmt.Errorf("need exactly one of ttm, tenor, date")
	}

	switch {
	case n.TTM != nil:
		return *n.TTM, nil
	case n.Tenor != "":
		return curve.TenorYears(n.Tenor)
	default:
		if settlement.IsZero() {
			return 0, fmt.Errorf("date-keyed node requires settlement")
		}
		d, err := time.Parse("2006-01-02", n.Date)
		if err != nil {
			return 0, fmt.Errorf("invalid date %q: %v", n.Date, err)
		}
		return curve.YearFraction(settlement, d, dc)
	}
}

func printTable(c *curve.Curve) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "TTM\tDiscountRate\tDiscountFactor\tForwardFactor\tForwardRate\t")
	for _, n := range c.Nodes() {
		fmt.Fprintf(w, "%.4f\t%.6f\t%.6f\t%s\t%s\t\n",
			n.TTM, n.DiscountRate, n.DiscountFactor,
			formatOpt(n.ForwardFactor), formatOpt(n.ForwardRate))
	}
	w.Flush()
}

func formatOpt(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.6f", *v)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func exitError(msg string) {
	fmt.Fprintln(os.Stderr, "curvetable:", msg)
	os.Exit(1)
}
