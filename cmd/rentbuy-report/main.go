package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kingpin"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lachine.dev/rentbuy"
	"lachine.dev/rentbuy/config"
	"lachine.dev/rentbuy/excel"
)

var amounts = message.NewPrinter(language.English)

// sampleStep returns the month stride between printed columns. Long horizons
// get one column per year to keep the table readable.
func sampleStep(start, end rentbuy.Month) int {
	if end.Sub(start) >= 36 {
		return 12
	}
	return 1
}

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Lshortfile)

	cmdRent := kingpin.Command("rent", "Show the renting projection")
	cmdBuy := kingpin.Command("buy", "Show the buying projection")
	cmdCompare := kingpin.Command("compare", "Compare buying against renting")
	xlsxFile := cmdCompare.Flag("xlsx", "Also write the comparison to an xlsx workbook").String()
	configFile := kingpin.Flag("config", "Scenario file").Default("scenarios.yaml").String()
	scenario := kingpin.Flag("scenario", "Scenario name, defaults to the first in the file").String()
	verbose := kingpin.Flag("verbose", "Log simulation parameters").Short('v').Bool()
	cmd := kingpin.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
	}

	sc := loadScenario(*configFile, *scenario)

	switch cmd {
	case cmdRent.FullCommand():
		rentReport(logger, sc)
	case cmdBuy.FullCommand():
		buyReport(logger, sc)
	case cmdCompare.FullCommand():
		compareReport(logger, sc, *xlsxFile)
	}
}

func loadScenario(path, name string) rentbuy.Scenario {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	fsc, err := cfg.Scenario(name)
	if err != nil {
		log.Fatal(err)
	}
	sc, err := fsc.Build()
	if err != nil {
		log.Fatal(err)
	}
	return sc
}

func rentReport(logger *zap.Logger, sc rentbuy.Scenario) {
	out, err := rentbuy.SimulateRenting(logger, sc)
	if err != nil {
		log.Fatal(err)
	}

	headerMonths("RENTING", out.Capital.Start(), out.Capital.End())
	dashes(out.Capital.Start(), out.Capital.End())
	fmtSeries("Rent", out.Rent)
	fmtSeries("Capital", out.Capital)

	fmt.Println()
	fmtAmount("Total rent paid", out.Rent.Sum())
	fmtAmount("Final capital", out.Capital.Last())
}

func buyReport(logger *zap.Logger, sc rentbuy.Scenario) {
	out, err := rentbuy.SimulateBuying(logger, sc)
	if err != nil {
		log.Fatal(err)
	}

	headerMonths("BUYING", out.Capital.Start(), out.Capital.End())
	dashes(out.Capital.Start(), out.Capital.End())
	fmtSeries("Capital", out.Capital)
	fmtSeries("House value", out.House)
	fmtSeries("Mortgage balance", out.Mortgage)
	fmtSeries("Municipal tax", out.MunicipalTax)
	dashes(out.Capital.Start(), out.Capital.End())
	fmtSeries("Net position", out.NetPosition)

	fmt.Println()
	fmtAmount("Monthly mortgage payment", out.Payment)
	fmtAmount("Transfer tax paid", out.TransferTax)
	fmtAmount("Total municipal taxes", out.MunicipalTax.Sum())
	fmtAmount("Final net position", out.NetPosition.Last())
}

func compareReport(logger *zap.Logger, sc rentbuy.Scenario, xlsxFile string) {
	cmp, err := rentbuy.Compare(logger, sc)
	if err != nil {
		log.Fatal(err)
	}

	headerMonths("RENTING", cmp.Renting.Capital.Start(), cmp.Renting.Capital.End())
	dashes(cmp.Renting.Capital.Start(), cmp.Renting.Capital.End())
	fmtSeries("Rent", cmp.Renting.Rent)
	fmtSeries("Capital", cmp.Renting.Capital)

	fmt.Println()
	fmt.Println()
	headerMonths("BUYING", cmp.Buying.Capital.Start(), cmp.Buying.Capital.End())
	dashes(cmp.Buying.Capital.Start(), cmp.Buying.Capital.End())
	fmtSeries("Capital", cmp.Buying.Capital)
	fmtSeries("House value", cmp.Buying.House)
	fmtSeries("Mortgage balance", cmp.Buying.Mortgage)
	fmtSeries("Municipal tax", cmp.Buying.MunicipalTax)
	dashes(cmp.Buying.Capital.Start(), cmp.Buying.Capital.End())
	fmtSeries("Net position", cmp.Buying.NetPosition)

	fmt.Println()
	fmtAmount("Monthly mortgage payment", cmp.Buying.Payment)
	fmtAmount("Transfer tax paid", cmp.Buying.TransferTax)
	fmtAmount("Total rent paid", cmp.TotalRentPaid())
	fmtAmount("Total mortgage interest", cmp.TotalInterest())
	fmtAmount("Total municipal taxes", cmp.TotalMunicipalTax())
	fmtAmount("Final capital when renting", cmp.Renting.Capital.Last())
	fmtAmount("Final net position when buying", cmp.Buying.NetPosition.Last())
	if m, ok := cmp.Breakeven(); ok {
		fmtText("Buying overtakes renting", m.String())
	} else {
		fmtText("Buying overtakes renting", "never")
	}

	if xlsxFile != "" {
		bs, err := excel.ComparisonXLSX(cmp)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(xlsxFile, bs, 0o644); err != nil {
			log.Fatal(err)
		}
	}
}

func headerMonths(hdr string, start, end rentbuy.Month) {
	fmt.Printf("%-22s", hdr)
	for m := start; m <= end; m = m.Add(sampleStep(start, end)) {
		fmt.Printf(" %12s", m.String())
	}
	fmt.Printf(" %12s", "Final")
	fmt.Printf("\n")
}

func dashes(start, end rentbuy.Month) {
	fmt.Printf("%-22s", "")
	for m := start; m <= end; m = m.Add(sampleStep(start, end)) {
		fmt.Printf(" %12s", "-----------")
	}
	fmt.Printf(" %12s", "-----------")
	fmt.Printf("\n")
}

func fmtSeries(descr string, s *rentbuy.Series) {
	fmt.Printf("  %-20s", descr)
	for m := s.Start(); m <= s.End(); m = m.Add(sampleStep(s.Start(), s.End())) {
		v, _ := s.At(m)
		fmt.Printf(" %12s", amounts.Sprintf("%.0f", v))
	}
	fmt.Printf(" %12s", amounts.Sprintf("%.0f", s.Last()))
	fmt.Printf("\n")
}

func fmtAmount(descr string, v float64) {
	fmtText(descr, amounts.Sprintf("%.2f", v))
}

func fmtText(descr, v string) {
	fmt.Printf("  %-32s %12s\n", descr, v)
}
