package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/time/rate"

	"github.com/duongthien408-create/youtube-crawl/models"
)

// Extractor là phía đọc dữ liệu YouTube (yt-dlp).
type Extractor interface {
	ChannelInfo(ctx context.Context, channelURL string) (models.ChannelInfo, error)
	ListVideos(ctx context.Context, channelURL string, limit, offset int, skipShorts bool) ([]models.VideoStub, error)
	VideoDetail(ctx context.Context, videoURL string, skipShorts bool) (*models.VideoDetail, error)
	FetchTranscript(ctx context.Context, videoID, videoURL, lang string) (*models.Transcript, error)
}

// Store là phía ghi dữ liệu (Supabase).
type Store interface {
	FindChannel(channelID string) (*models.Channel, error)
	CreateChannel(ch models.Channel) (*models.Channel, error)
	FindCreator(name string) (*models.Creator, error)
	CreateCreator(cr models.Creator) (*models.Creator, error)
	VideoExists(videoID string) (bool, error)
	InsertVideo(v models.Video) (*models.Video, error)
	PostExists(sourceURL string) (bool, error)
	InsertPost(p models.Post) (*models.Post, error)
}

// Options điều khiển một lượt thu thập.
type Options struct {
	Language   string // vi | en
	Limit      int    // số video mỗi kênh
	Offset     int    // bỏ qua N video đầu, chỉ chế độ một kênh
	Delay      time.Duration
	SkipShorts bool
	MinViews   int64 // 0 = không lọc theo lượt xem
}

// Stats đếm kết quả một lượt thu thập.
type Stats struct {
	Saved   int
	Skipped int
	Failed  int
}

// Merge cộng dồn thống kê của một kênh vào tổng.
func (s *Stats) Merge(o Stats) {
	s.Saved += o.Saved
	s.Skipped += o.Skipped
	s.Failed += o.Failed
}

// videoOutcome là kết quả xử lý một video. Mỗi video rơi vào đúng một nhánh
// để tổng kết saved/skipped/failed không bỏ sót trường hợp nào.
type videoOutcome int

const (
	outcomeSaved videoOutcome = iota
	outcomeExists
	outcomeShort
	outcomeLowViews
	outcomeNoDetail
	outcomeCheckFailed
	outcomeSaveFailed
)

func tally(stats *Stats, o videoOutcome) {
	switch o {
	case outcomeSaved:
		stats.Saved++
	case outcomeExists, outcomeShort, outcomeLowViews, outcomeNoDetail:
		stats.Skipped++
	case outcomeCheckFailed, outcomeSaveFailed:
		stats.Failed++
	}
}

// Nhịp cố định giữa hai video ở chế độ danh sách kênh.
const legacyDelay = 2 * time.Second

// Fetcher điều phối pipeline thu thập: liệt kê video, lọc, tải transcript
// và ghi vào DB. Tuần tự, mỗi lần một video.
type Fetcher struct {
	ex Extractor
	db Store

	// LegacyDelay là nhịp giữa hai video ở chế độ danh sách kênh.
	LegacyDelay time.Duration
}

func NewFetcher(ex Extractor, db Store) *Fetcher {
	return &Fetcher{ex: ex, db: db, LegacyDelay: legacyDelay}
}

// ProcessChannel thu thập một kênh trong danh sách cố định và ghi vào bảng
// posts (schema cũ). Lỗi liệt kê hay lỗi creator chỉ dừng kênh này, không
// dừng cả lượt chạy.
func (f *Fetcher) ProcessChannel(ctx context.Context, name, channelID string, opts Options) (Stats, error) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Processing: %s\n", name)
	fmt.Printf("Channel ID: %s\n", channelID)
	fmt.Printf("Language: %s\n", strings.ToUpper(opts.Language))

	creatorID, err := f.ensureCreator(name, channelID)
	if err != nil {
		log.Printf("Could not get/create creator %s: %v", name, err)
		return Stats{}, nil
	}

	stubs, err := f.ex.ListVideos(ctx, channelVideosURL(channelID), opts.Limit, 0, opts.SkipShorts)
	if err != nil {
		log.Printf("Error fetching videos from %s: %v", name, err)
		return Stats{}, nil
	}
	fmt.Printf("Found %d videos\n", len(stubs))

	gate := rate.NewLimiter(rate.Every(f.LegacyDelay), 1)
	var stats Stats
	for i, stub := range stubs {
		if err := gate.Wait(ctx); err != nil {
			return stats, err
		}
		fmt.Printf("\n[%d/%d] %s...\n", i+1, len(stubs), preview(stub.Title, 50))
		tally(&stats, f.processPost(ctx, creatorID, stub, opts))
	}

	fmt.Printf("\nChannel complete: %d saved, %d skipped, %d failed\n",
		stats.Saved, stats.Skipped, stats.Failed)
	return stats, nil
}

// ProcessSingleChannel thu thập một kênh theo channel ID và ghi vào bảng
// videos (schema hiện tại).
func (f *Fetcher) ProcessSingleChannel(ctx context.Context, channelID string, opts Options) (Stats, error) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Processing channel: %s\n", channelID)
	fmt.Printf("Language: %s\n", strings.ToUpper(opts.Language))
	fmt.Printf("Offset: %d, Limit: %d, Delay: %s\n", opts.Offset, opts.Limit, opts.Delay)
	if opts.MinViews > 0 {
		fmt.Printf("Min views filter: %s\n", FormatViews(opts.MinViews))
	}

	channelUUID, err := f.ensureChannel(ctx, channelID, opts.Language)
	if err != nil {
		log.Printf("Could not get/create channel %s: %v", channelID, err)
		return Stats{}, nil
	}

	stubs, err := f.ex.ListVideos(ctx, channelVideosURL(channelID), opts.Limit, opts.Offset, opts.SkipShorts)
	if err != nil {
		log.Printf("Error fetching videos from %s: %v", channelID, err)
		return Stats{}, nil
	}
	fmt.Printf("Found %d videos (offset %d)\n", len(stubs), opts.Offset)

	gate := rate.NewLimiter(rate.Every(opts.Delay), 1)
	var stats Stats
	for i, stub := range stubs {
		if err := gate.Wait(ctx); err != nil {
			return stats, err
		}
		fmt.Printf("\n[%d/%d] %s...\n", i+1, len(stubs), preview(stub.Title, 50))
		tally(&stats, f.processVideo(ctx, channelUUID, stub, opts))
	}

	fmt.Printf("\nChannel complete: %d saved, %d skipped, %d failed\n",
		stats.Saved, stats.Skipped, stats.Failed)
	return stats, nil
}

// processVideo xử lý một video cho bảng videos: kiểm tra tồn tại, đọc chi
// tiết, lọc lượt xem, tải transcript rồi insert.
func (f *Fetcher) processVideo(ctx context.Context, channelUUID uuid.UUID, stub models.VideoStub, opts Options) videoOutcome {
	exists, err := f.db.VideoExists(stub.ID)
	if err != nil {
		// chưa xác nhận được tồn tại thì không insert
		log.Printf("Error checking existence of %s: %v", stub.ID, err)
		return outcomeCheckFailed
	}
	if exists {
		fmt.Println("   Already exists, skipping...")
		return outcomeExists
	}

	detail, err := f.ex.VideoDetail(ctx, stub.URL, opts.SkipShorts)
	if err != nil {
		if errors.Is(err, ErrShortVideo) {
			fmt.Printf("   Skipping Short: %s\n", stub.URL)
			return outcomeShort
		}
		log.Printf("Error fetching details for %s: %v", stub.URL, err)
		fmt.Println("   Could not fetch details, skipping...")
		return outcomeNoDetail
	}

	if opts.MinViews > 0 && detail.ViewCount < opts.MinViews {
		fmt.Printf("   Skipping: only %s views (need %s)\n",
			FormatViews(detail.ViewCount), FormatViews(opts.MinViews))
		return outcomeLowViews
	}
	fmt.Printf("   Views: %s\n", FormatViews(detail.ViewCount))

	tr := f.fetchTranscript(ctx, stub, opts.Language)

	if _, err := f.db.InsertVideo(models.BuildVideo(channelUUID, stub, *detail, tr, opts.Language)); err != nil {
		log.Printf("Error saving video %s: %v", stub.ID, err)
		return outcomeSaveFailed
	}
	fmt.Println("   Saved to database")
	return outcomeSaved
}

// processPost xử lý một video cho bảng posts (schema cũ), khóa theo URL.
func (f *Fetcher) processPost(ctx context.Context, creatorID uuid.UUID, stub models.VideoStub, opts Options) videoOutcome {
	exists, err := f.db.PostExists(stub.URL)
	if err != nil {
		// chưa xác nhận được tồn tại thì không insert
		log.Printf("Error checking existence of %s: %v", stub.URL, err)
		return outcomeCheckFailed
	}
	if exists {
		fmt.Println("   Already exists, skipping...")
		return outcomeExists
	}

	detail, err := f.ex.VideoDetail(ctx, stub.URL, opts.SkipShorts)
	if err != nil {
		if errors.Is(err, ErrShortVideo) {
			fmt.Printf("   Skipping Short: %s\n", stub.URL)
			return outcomeShort
		}
		log.Printf("Error fetching details for %s: %v", stub.URL, err)
		fmt.Println("   Could not fetch details, skipping...")
		return outcomeNoDetail
	}

	tr := f.fetchTranscript(ctx, stub, opts.Language)

	if _, err := f.db.InsertPost(models.BuildPost(creatorID, stub, *detail, tr, opts.Language)); err != nil {
		log.Printf("Error saving post %s: %v", stub.URL, err)
		return outcomeSaveFailed
	}
	fmt.Println("   Saved to database")
	return outcomeSaved
}

// fetchTranscript tải phụ đề cho một video. Không có phụ đề hay lỗi tải đều
// không chặn việc lưu video.
func (f *Fetcher) fetchTranscript(ctx context.Context, stub models.VideoStub, lang string) *models.Transcript {
	fmt.Printf("   Fetching transcript (%s)...\n", lang)
	tr, err := f.ex.FetchTranscript(ctx, stub.ID, stub.URL, lang)
	if err != nil {
		log.Printf("Error fetching transcript for %s: %v", stub.ID, err)
		return nil
	}
	if tr == nil {
		fmt.Printf("   No %s subtitles found\n", strings.ToUpper(lang))
		return nil
	}
	fmt.Printf("   Transcript fetched: %d chars\n", len([]rune(tr.Plain)))
	return tr
}

// ensureChannel tìm kênh theo channel_id, chưa có thì đọc metadata từ
// YouTube và tạo mới. Chỉ gọi yt-dlp khi kênh chưa tồn tại trong DB.
func (f *Fetcher) ensureChannel(ctx context.Context, channelID, lang string) (uuid.UUID, error) {
	ch, err := f.db.FindChannel(channelID)
	if err != nil {
		return uuid.Nil, err
	}
	if ch == nil {
		info, err := f.ex.ChannelInfo(ctx, channelURL(channelID))
		if err != nil {
			log.Printf("Warning: could not fetch channel info for %s: %v", channelID, err)
			info = models.ChannelInfo{}
		}
		ch, err = f.db.CreateChannel(models.BuildChannel(channelID, lang, info))
		if err != nil {
			return uuid.Nil, err
		}
		fmt.Printf("Created new channel: %s\n", ch.Name)
	} else {
		fmt.Printf("Using existing channel: %s\n", ch.Name)
	}
	if ch.ID == nil {
		return uuid.Nil, fmt.Errorf("channel %s thiếu id", channelID)
	}
	return *ch.ID, nil
}

// ensureCreator tìm creator theo tên, chưa có thì tạo mới.
func (f *Fetcher) ensureCreator(name, channelID string) (uuid.UUID, error) {
	cr, err := f.db.FindCreator(name)
	if err != nil {
		return uuid.Nil, err
	}
	if cr == nil {
		cr, err = f.db.CreateCreator(models.BuildCreator(name, channelVideosURL(channelID)))
		if err != nil {
			return uuid.Nil, err
		}
		fmt.Printf("Created new creator: %s\n", cr.Name)
	}
	if cr.ID == nil {
		return uuid.Nil, fmt.Errorf("creator %s thiếu id", name)
	}
	return *cr.ID, nil
}

// preview cắt tiêu đề cho dòng tiến độ.
func preview(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

var viewPrinter = message.NewPrinter(language.English)

// FormatViews in số lượt xem có dấu phân tách hàng nghìn.
func FormatViews(n int64) string {
	return viewPrinter.Sprintf("%d", n)
}
