package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"lachine.dev/rentbuy"
	"lachine.dev/rentbuy/config"
)

func main() {
	dir := flag.String("dir", ".", "Directory")
	configFile := flag.String("config", "scenarios.yaml", "Scenario file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewNop()
	for _, fsc := range cfg.Scenarios {
		sc, err := fsc.Build()
		if err != nil {
			log.Fatal(err)
		}
		cmp, err := rentbuy.Compare(logger, sc)
		if err != nil {
			log.Fatal(err)
		}
		writeRenting(*dir, fsc.Name, cmp.Renting)
		writeBuying(*dir, fsc.Name, cmp.Buying)
	}
}

func writeRenting(dir, name string, out *rentbuy.RentOutcome) {
	fd, err := os.Create(filepath.Join(dir, fileName(name, "renting")))
	if err != nil {
		log.Fatal(err)
	}
	cw := csv.NewWriter(fd)
	cw.Write([]string{"Month", "Rent", "Capital"})
	for m := out.Capital.Start(); m <= out.Capital.End(); m = m.Add(1) {
		rent, _ := out.Rent.At(m)
		capital, _ := out.Capital.At(m)
		cw.Write([]string{m.String(), amount(rent), amount(capital)})
	}
	cw.Flush()
	fd.Close()
}

func writeBuying(dir, name string, out *rentbuy.BuyOutcome) {
	fd, err := os.Create(filepath.Join(dir, fileName(name, "buying")))
	if err != nil {
		log.Fatal(err)
	}
	cw := csv.NewWriter(fd)
	cw.Write([]string{"Month", "Capital", "HouseValue", "MortgageBalance", "MunicipalTax", "NetPosition"})
	for m := out.Capital.Start(); m <= out.Capital.End(); m = m.Add(1) {
		capital, _ := out.Capital.At(m)
		house, _ := out.House.At(m)
		mortgage, _ := out.Mortgage.At(m)
		tax, _ := out.MunicipalTax.At(m)
		net, _ := out.NetPosition.At(m)
		cw.Write([]string{m.String(), amount(capital), amount(house), amount(mortgage), amount(tax), amount(net)})
	}
	cw.Flush()
	fd.Close()
}

func fileName(name, suffix string) string {
	return strings.ReplaceAll(name, " ", "-") + "-" + suffix + ".csv"
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
