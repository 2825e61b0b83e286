package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"evcal/internal/config"
	"evcal/internal/dateutil"
	"evcal/internal/holiday"
	"evcal/internal/ics"
	appLog "evcal/internal/log"
	"evcal/internal/model"
	"evcal/internal/notify"
	"evcal/internal/recur"
	"evcal/internal/search"
	"evcal/internal/store"
)

type flagConfig struct {
	configPath string
	eventsPath string
	date       string
	view       string
	searchTerm string
	once       bool
}

func main() {
	appLog.Init("info")
	defer appLog.Sync()

	flags := parseFlags()

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	appLog.Init(conf.LogLevel)

	if flags.eventsPath != "" {
		conf.EventsPath = flags.eventsPath
	}
	if flags.view != "" {
		conf.View = flags.view
		conf.Normalize()
	}

	if loc, lerr := time.LoadLocation(conf.Timezone); lerr == nil {
		// All event wall-clock parsing happens in the process-local zone.
		time.Local = loc
	} else {
		appLog.Error("unknown timezone, using system default", lerr, "timezone", conf.Timezone)
	}

	appLog.Info("effective config",
		"timezone", conf.Timezone,
		"events", conf.EventsPath,
		"format", conf.EventsFormat,
		"tick", conf.TickCron,
		"view", conf.View,
		"horizon_days", conf.HorizonDays,
		"once", flags.once,
	)

	st := store.New(loadEvents(conf)...)

	ref := time.Now()
	if flags.date != "" {
		d, ok := dateutil.ParseDate(flags.date)
		if !ok {
			appLog.Error("invalid -date", errors.New("want YYYY-MM-DD"), "date", flags.date)
			os.Exit(1)
		}
		ref = d
	}

	if flags.once {
		printView(st.List(), ref, search.View(conf.View), flags.searchTerm)
		return
	}

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	sched := notify.NewScheduler()
	// A tick that outruns the schedule is skipped, never run concurrently.
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err = c.AddFunc(conf.TickCron, func() {
		now := time.Now()
		window := recur.ExpandAll(st.List(), now.AddDate(0, 0, -1), now.AddDate(0, 0, conf.HorizonDays))
		for _, n := range sched.Tick(window, now) {
			appLog.Info("notification", "id", n.ID, "message", n.Message)
		}
	})
	if err != nil {
		appLog.Error("invalid tick schedule", err, "tick", conf.TickCron)
		os.Exit(1)
	}

	c.Start()
	appLog.Info("evcal started", "event_count", st.Len())

	<-ctx.Done()
	<-c.Stop().Done()
	appLog.Info("evcal exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "evcal.yaml", "Path to config file")
	flag.StringVar(&cfg.eventsPath, "events", "", "Events file (overrides config if set)")
	flag.StringVar(&cfg.date, "date", "", "Reference date YYYY-MM-DD (default: today)")
	flag.StringVar(&cfg.view, "view", "", "View window: week or month (overrides config)")
	flag.StringVar(&cfg.searchTerm, "search", "", "Filter events by title/description/location")
	flag.BoolVar(&cfg.once, "once", false, "Print the calendar view once and exit")

	flag.Parse()

	return cfg
}

func loadEvents(conf *config.Config) []model.Event {
	if conf.EventsFormat == config.FormatICS {
		events, err := ics.ImportFile(conf.EventsPath)
		if err != nil {
			appLog.Error("failed to import ics events", err, "path", conf.EventsPath)
			os.Exit(1)
		}
		return events
	}

	data, err := os.ReadFile(conf.EventsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			appLog.Info("no events file, starting empty", "path", conf.EventsPath)
			return nil
		}
		appLog.Error("failed to read events file", err, "path", conf.EventsPath)
		os.Exit(1)
	}

	var events []model.Event
	if err := yaml.Unmarshal(data, &events); err != nil {
		appLog.Error("failed to decode events file", err, "path", conf.EventsPath)
		os.Exit(1)
	}
	return events
}

// printView renders the month grid around ref with holiday (*) and event (+)
// markers, then lists the events visible in the selected view.
func printView(events []model.Event, ref time.Time, view search.View, term string) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	occurrences := recur.ExpandAll(events, monthStart, monthEnd)
	filtered := search.Filter(occurrences, term, ref, view)
	holidays := holiday.ForMonth(ref)

	if view == search.ViewWeek {
		fmt.Println(dateutil.FormatWeek(ref))
	} else {
		fmt.Println(dateutil.FormatMonth(ref))
	}

	fmt.Println("  일   월   화   수   목   금   토")
	for _, row := range dateutil.WeeksInMonth(ref) {
		line := ""
		for _, day := range row {
			if day == dateutil.NoDay {
				line += "     "
				continue
			}
			marker := " "
			if len(dateutil.EventsForDay(filtered, day)) > 0 {
				marker = "+"
			}
			if _, ok := holidays[dateutil.FormatDate(ref, day)]; ok {
				marker = "*"
			}
			line += fmt.Sprintf("%4d%s", day, marker)
		}
		fmt.Println(line)
	}

	dates := make([]string, 0, len(holidays))
	for date := range holidays {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		fmt.Printf("* %s %s\n", date, holidays[date])
	}
	for _, e := range filtered {
		fmt.Printf("+ %s %s-%s %s\n", e.Date, e.StartTime, e.EndTime, e.Title)
	}
}
