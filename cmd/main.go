package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/duongthien408-create/youtube-crawl/config"
	"github.com/duongthien408-create/youtube-crawl/services"
	"github.com/duongthien408-create/youtube-crawl/utils"
)

func main() {
	lang := flag.String("lang", "all", "Language of channels to fetch: vi, en or all")
	limit := flag.Int("limit", 5, "Number of videos per channel")
	offset := flag.Int("offset", 0, "Skip first N videos (single channel mode)")
	delay := flag.Int("delay", 5, "Seconds to wait between videos (single channel mode)")
	includeShorts := flag.Bool("include-shorts", false, "Include YouTube Shorts")
	channel := flag.String("channel", "", "Fetch a single channel by channel ID")
	minViews := flag.Int64("min-views", 0, "Skip videos below N views (single channel mode)")
	flag.Parse()

	if *lang != "vi" && *lang != "en" && *lang != "all" {
		fmt.Fprintf(os.Stderr, "Error: invalid -lang value %q (choose vi, en or all)\n", *lang)
		os.Exit(1)
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("Không tìm thấy file .env")
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	db, err := utils.NewSupabase(settings.SupabaseURL, settings.SupabaseKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ytdlp := services.NewYtdlp()
	if err := ytdlp.CheckInstalled(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fetcher := services.NewFetcher(ytdlp, db)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("YouTube Video + Transcript Fetcher")
	fmt.Printf("Language: %s\n", strings.ToUpper(*lang))
	fmt.Printf("Limit: %d videos per channel\n", *limit)
	fmt.Printf("Offset: %d\n", *offset)
	fmt.Printf("Delay: %ds between videos\n", *delay)
	fmt.Printf("Skip Shorts: %v\n", !*includeShorts)
	if *minViews > 0 {
		fmt.Printf("Min views: %s\n", services.FormatViews(*minViews))
	}
	fmt.Println(strings.Repeat("=", 60))

	start := time.Now()
	var total services.Stats

	if *channel != "" {
		// Chế độ một kênh: ghi vào bảng videos
		fmt.Println("\n>>> SINGLE CHANNEL MODE <<<")
		runLang := *lang
		if runLang == "all" {
			runLang = "vi"
		}

		stats, err := fetcher.ProcessSingleChannel(ctx, *channel, services.Options{
			Language:   runLang,
			Limit:      *limit,
			Offset:     *offset,
			Delay:      time.Duration(*delay) * time.Second,
			SkipShorts: !*includeShorts,
			MinViews:   *minViews,
		})
		total = stats
		if err != nil {
			log.Printf("Stopped: %v", err)
		}
	} else {
		// Chế độ danh sách kênh cố định: ghi vào bảng posts
		stopped := false
		if *lang == "vi" || *lang == "all" {
			fmt.Println("\n>>> VIETNAMESE CHANNELS <<<")
			for _, seed := range config.ChannelsVI {
				stats, err := fetcher.ProcessChannel(ctx, seed.Name, seed.ChannelID, services.Options{
					Language:   "vi",
					Limit:      *limit,
					SkipShorts: !*includeShorts,
				})
				total.Merge(stats)
				if err != nil {
					log.Printf("Stopped: %v", err)
					stopped = true
					break
				}
			}
		}
		if !stopped && (*lang == "en" || *lang == "all") {
			fmt.Println("\n>>> ENGLISH CHANNELS <<<")
			for _, seed := range config.ChannelsEN {
				stats, err := fetcher.ProcessChannel(ctx, seed.Name, seed.ChannelID, services.Options{
					Language:   "en",
					Limit:      *limit,
					SkipShorts: !*includeShorts,
				})
				total.Merge(stats)
				if err != nil {
					log.Printf("Stopped: %v", err)
					break
				}
			}
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("COMPLETE")
	fmt.Printf("Total videos saved: %d\n", total.Saved)
	fmt.Printf("Total videos skipped: %d\n", total.Skipped)
	fmt.Printf("Total videos failed: %d\n", total.Failed)
	fmt.Printf("Time: %s\n", time.Since(start).Round(time.Second))
	fmt.Println(strings.Repeat("=", 60))
}
