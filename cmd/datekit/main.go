package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"datekit/bizday"
	"datekit/config"
	"datekit/date"
	"datekit/holiday"
	applog "datekit/internal/log"
	"datekit/natural"
	"datekit/recur"
)

type flagConfig struct {
	configPath   string
	country      string
	holidaysYear int
	nextBusiness string
	expr         string
	recurPattern string
	recurFrom    string
	recurCount   int
	verbose      bool
}

func main() {
	flags := parseFlags()
	if flags.verbose {
		applog.SetLevel(applog.LevelDebug)
	}

	if flags.configPath != "" {
		conf, err := config.Load(flags.configPath)
		if err != nil {
			applog.Error("failed to load config", err, "config_path", flags.configPath)
			os.Exit(1)
		}
		if err := conf.Apply(); err != nil {
			applog.Error("failed to apply config", err, "config_path", flags.configPath)
			os.Exit(1)
		}
		applog.Info("effective config",
			"working_days", conf.WorkingDays,
			"holiday_count", len(conf.Holidays),
			"country", conf.Country,
			"week_start", conf.WeekStart,
		)
	}

	switch {
	case flags.holidaysYear != 0:
		runHolidays(flags.holidaysYear, flags.country)
	case flags.nextBusiness != "":
		runNextBusiness(flags.nextBusiness)
	case flags.expr != "":
		runExpr(flags.expr)
	case flags.recurPattern != "":
		runRecur(flags.recurPattern, flags.recurFrom, flags.recurCount)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to calendar config file (optional)")
	flag.StringVar(&cfg.country, "country", "US", "Country code for holiday lookups")
	flag.IntVar(&cfg.holidaysYear, "holidays", 0, "List holidays for the given year")
	flag.StringVar(&cfg.nextBusiness, "next-business", "", "Print the next business day after the given date")
	flag.StringVar(&cfg.expr, "expr", "", "Evaluate a natural-language date expression")
	flag.StringVar(&cfg.recurPattern, "recur", "", "Recurrence pattern to preview (daily, weekly, ...)")
	flag.StringVar(&cfg.recurFrom, "from", "", "Start date for -recur (defaults to today)")
	flag.IntVar(&cfg.recurCount, "n", 10, "Number of occurrences for -recur")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")

	flag.Parse()
	return cfg
}

func runHolidays(year int, country string) {
	list, err := holiday.ForYear(year, country)
	if err != nil {
		applog.Error("holiday lookup failed", err, "year", year, "country", country)
		os.Exit(1)
	}
	for _, h := range list {
		fmt.Printf("%s  %s\n", date.Key(h.Date), h.Name)
	}
}

func runNextBusiness(input string) {
	t, err := date.Parse(input)
	if err != nil {
		applog.Error("invalid date", err, "input", input)
		os.Exit(1)
	}
	next, err := bizday.NextBusinessDay(t)
	if err != nil {
		applog.Error("no business day found", err, "input", input)
		os.Exit(1)
	}
	fmt.Println(date.Key(next))
}

func runExpr(expr string) {
	t, err := natural.Parse(expr, natural.Options{Strict: true})
	if err != nil {
		applog.Error("expression not understood", err, "expr", expr)
		os.Exit(1)
	}
	fmt.Println(t.Format(time.RFC3339))
}

func runRecur(pattern, from string, n int) {
	p, err := recur.PatternFromString(pattern)
	if err != nil {
		applog.Error("invalid pattern", err, "pattern", pattern)
		os.Exit(1)
	}

	start := date.StripTime(time.Now())
	if from != "" {
		start, err = date.Parse(from)
		if err != nil {
			applog.Error("invalid start date", err, "from", from)
			os.Exit(1)
		}
	}

	dates, err := recur.Generate(start, recur.Config{Pattern: p, MaxOccurrences: n})
	if err != nil {
		applog.Error("recurrence generation failed", err, "pattern", pattern)
		os.Exit(1)
	}
	for _, d := range dates {
		fmt.Println(date.Key(d))
	}
}
