package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"TurnipSentinel/internal/command"
	"TurnipSentinel/internal/forecast"
	"TurnipSentinel/internal/model"

	"github.com/spf13/cobra"
)

func predictCmd() *cobra.Command {
	var (
		buyPrice   int
		sellPrices string
		variants   bool
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict this week's sell price ranges",
		Long: `Predict the sell price range of every half-day from the Sunday buy price and
the sell prices observed so far. Sell prices are comma-separated starting with
Monday AM; use 0 for values you do not know.`,
		Example: `  turnips predict --buy-price 100 --sell-prices 85,0,80`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prices, err := command.ParsePrices(sellPrices)
			if err != nil {
				return fmt.Errorf("--sell-prices: %w", err)
			}
			preds, err := forecast.Predict(buyPrice, model.ObservationsFromPrices(prices))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, preds, variants)
			}
			if len(preds) == 0 {
				_, _ = fmt.Fprintln(out, "No pattern matches the given prices.")
				return nil
			}
			return writeTable(out, preds, variants)
		},
	}
	cmd.Flags().IntVar(&buyPrice, "buy-price", 0, "price turnips were bought at on Sunday (required)")
	cmd.Flags().StringVar(&sellPrices, "sell-prices", "", "comma-separated sell prices from Monday AM, 0 = unknown")
	cmd.Flags().BoolVar(&variants, "variants", false, "also list every surviving phase-length variant")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("buy-price")
	return cmd
}

func slotHeader() string {
	cols := make([]string, 0, model.SlotCount)
	for s := model.Slot(0); s < model.SlotCount; s++ {
		cols = append(cols, s.String())
	}
	return strings.Join(cols, "\t")
}

func writeTable(out io.Writer, preds []model.PatternPrediction, variants bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "PATTERN\tBUY\t%s\n", slotHeader())
	for i := range preds {
		p := &preds[i]
		values := p.Strings()
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", p.PatternName, p.BasePrice, strings.Join(values[:], "\t"))
		if !variants {
			continue
		}
		for _, v := range p.Variants {
			vals := model.RangeStrings(v.Ranges)
			_, _ = fmt.Fprintf(w, "  %s\t\t%s\n", lengthsLabel(v.PhaseLengths), strings.Join(vals[:], "\t"))
		}
	}
	return w.Flush()
}

func lengthsLabel(lengths []int) string {
	parts := make([]string, len(lengths))
	for i, n := range lengths {
		parts[i] = strconv.Itoa(n)
	}
	return "phases " + strings.Join(parts, "/")
}

type jsonVariant struct {
	PhaseLengths []int    `json:"phase_lengths"`
	Prices       []string `json:"prices"`
}

type jsonPrediction struct {
	Pattern  string        `json:"pattern"`
	BuyPrice int           `json:"buy_price"`
	Prices   []string      `json:"prices"`
	Variants []jsonVariant `json:"variants,omitempty"`
}

func writeJSON(out io.Writer, preds []model.PatternPrediction, variants bool) error {
	res := make([]jsonPrediction, 0, len(preds))
	for i := range preds {
		p := &preds[i]
		values := p.Strings()
		jp := jsonPrediction{Pattern: p.PatternName, BuyPrice: p.BasePrice, Prices: values[:]}
		if variants {
			for _, v := range p.Variants {
				vals := model.RangeStrings(v.Ranges)
				jp.Variants = append(jp.Variants, jsonVariant{PhaseLengths: v.PhaseLengths, Prices: vals[:]})
			}
		}
		res = append(res, jp)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
