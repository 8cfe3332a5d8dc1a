package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/duongthien408-create/youtube-crawl/models"
)

const (
	defaultYtdlpPath    = "yt-dlp"
	defaultYtdlpTimeout = 10 * time.Minute
)

// Lỗi phân loại từ đầu ra của yt-dlp.
var (
	ErrYtdlpNotInstalled = errors.New("yt-dlp is not installed")
	ErrChannelNotFound   = errors.New("channel not found")
	ErrRateLimited       = errors.New("rate limited by YouTube")
	ErrNetworkTimeout    = errors.New("network timeout")
	ErrShortVideo        = errors.New("video is a YouTube Short")
)

// Ytdlp đọc dữ liệu YouTube bằng cách chạy yt-dlp như một subprocess.
type Ytdlp struct {
	// Path là đường dẫn tới yt-dlp. Mặc định "yt-dlp" trong PATH.
	Path string

	// Timeout là thời gian chờ tối đa cho một lần gọi. Mặc định 10 phút.
	Timeout time.Duration
}

func NewYtdlp() *Ytdlp {
	return &Ytdlp{
		Path:    defaultYtdlpPath,
		Timeout: defaultYtdlpTimeout,
	}
}

// CheckInstalled kiểm tra yt-dlp có chạy được không.
func (y *Ytdlp) CheckInstalled(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, y.path(), "--version")
	if err := cmd.Run(); err != nil {
		return ErrYtdlpNotInstalled
	}
	return nil
}

// ChannelInfo đọc tên, mô tả và ảnh đại diện của kênh qua một lần dò
// danh sách phẳng.
func (y *Ytdlp) ChannelInfo(ctx context.Context, channelURL string) (models.ChannelInfo, error) {
	out, err := y.run(ctx, channelURL,
		"--flat-playlist",
		"--playlist-items", "1",
		"-J",
		"--no-warnings",
		channelURL,
	)
	if err != nil {
		return models.ChannelInfo{}, err
	}
	return parseChannelMeta(out)
}

// ListVideos liệt kê video của kênh ở chế độ phẳng, bắt đầu từ offset.
// Lấy dư gấp đôi limit để bù số video bị lọc Shorts rồi cắt về đúng limit.
func (y *Ytdlp) ListVideos(ctx context.Context, channelURL string, limit, offset int, skipShorts bool) ([]models.VideoStub, error) {
	window := fmt.Sprintf("%d-%d", offset+1, offset+limit*2)
	out, err := y.run(ctx, channelURL,
		"--flat-playlist",
		"--playlist-items", window,
		"-J",
		"--no-warnings",
		channelURL,
	)
	if err != nil {
		return nil, err
	}
	return parseFlatPlaylist(out, limit, skipShorts)
}

// VideoDetail đọc metadata đầy đủ của một video.
// Trả về ErrShortVideo khi skipShorts bật và video ngắn hơn 60 giây.
func (y *Ytdlp) VideoDetail(ctx context.Context, videoURL string, skipShorts bool) (*models.VideoDetail, error) {
	out, err := y.run(ctx, videoURL, "-J", "--no-warnings", videoURL)
	if err != nil {
		return nil, err
	}
	return parseDetail(out, skipShorts)
}

// FetchTranscript tải phụ đề json3 (kể cả phụ đề tự động) về thư mục tạm rồi
// parse. Video không có phụ đề cho ngôn ngữ này trả về nil, không phải lỗi.
// Thư mục tạm luôn được dọn khi hàm thoát.
func (y *Ytdlp) FetchTranscript(ctx context.Context, videoID, videoURL, lang string) (*models.Transcript, error) {
	tmpDir, err := os.MkdirTemp("", "subs-*")
	if err != nil {
		return nil, fmt.Errorf("không tạo được thư mục tạm: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	_, err = y.run(ctx, videoURL,
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", lang,
		"--sub-format", "json3",
		"--no-warnings",
		"-o", filepath.Join(tmpDir, videoID),
		videoURL,
	)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, fmt.Sprintf("%s.%s.json3", videoID, lang)))
	if err != nil {
		// yt-dlp chạy xong mà không ghi file nghĩa là không có phụ đề
		return nil, nil
	}

	plain, timestamped, err := ParseJSON3(data)
	if err != nil {
		return nil, err
	}
	return &models.Transcript{Plain: plain, Timestamped: timestamped}, nil
}

func (y *Ytdlp) path() string {
	if y.Path != "" {
		return y.Path
	}
	return defaultYtdlpPath
}

// run chạy yt-dlp với timeout và trả về stdout.
func (y *Ytdlp) run(ctx context.Context, target string, args ...string) ([]byte, error) {
	timeout := y.Timeout
	if timeout == 0 {
		timeout = defaultYtdlpTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, y.path(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if cmdCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%s: %w", target, ErrNetworkTimeout)
		}
		if cmdCtx.Err() == context.Canceled {
			return nil, context.Canceled
		}
		return nil, classifyStderr(target, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// classifyStderr ánh xạ các lỗi quen thuộc trong stderr của yt-dlp
// về sentinel error.
func classifyStderr(target string, err error, stderr string) error {
	if strings.Contains(stderr, "not found") || strings.Contains(stderr, "does not exist") {
		return fmt.Errorf("%s: %w", target, ErrChannelNotFound)
	}
	if strings.Contains(stderr, "rate") || strings.Contains(stderr, "429") {
		return fmt.Errorf("%s: %w", target, ErrRateLimited)
	}
	return fmt.Errorf("yt-dlp failed for %s: %w: %s", target, err, stderr)
}

// flatPlaylist là JSON đầu ra của yt-dlp cho một kênh ở chế độ phẳng.
type flatPlaylist struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Channel     string          `json:"channel"`
	Uploader    string          `json:"uploader"`
	Description string          `json:"description"`
	Thumbnail   string          `json:"thumbnail"`
	Thumbnails  []flatThumbnail `json:"thumbnails"`
	Entries     []flatEntry     `json:"entries"`
}

type flatEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type flatThumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// detailJSON là JSON chi tiết một video của yt-dlp.
type detailJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    float64 `json:"duration"` // giây
	ViewCount   int64   `json:"view_count"`
	UploadDate  string  `json:"upload_date"` // YYYYMMDD
}

func parseChannelMeta(data []byte) (models.ChannelInfo, error) {
	var playlist flatPlaylist
	if err := json.Unmarshal(data, &playlist); err != nil {
		return models.ChannelInfo{}, fmt.Errorf("parse channel info: %w", err)
	}
	return models.ChannelInfo{
		Name:        coalesce(playlist.Channel, playlist.Uploader, playlist.Title),
		Description: playlist.Description,
		Thumbnail:   coalesce(playlist.Thumbnail, bestThumbnail(playlist.Thumbnails)),
	}, nil
}

func parseFlatPlaylist(data []byte, limit int, skipShorts bool) ([]models.VideoStub, error) {
	var playlist flatPlaylist
	if err := json.Unmarshal(data, &playlist); err != nil {
		return nil, fmt.Errorf("parse video list: %w", err)
	}

	stubs := make([]models.VideoStub, 0, limit)
	for _, entry := range playlist.Entries {
		if entry.ID == "" {
			continue
		}
		if skipShorts && strings.Contains(entry.URL, "/shorts/") {
			continue
		}
		stubs = append(stubs, models.VideoStub{
			ID:    entry.ID,
			Title: entry.Title,
			URL:   watchURL(entry.ID),
		})
		if len(stubs) >= limit {
			break
		}
	}
	return stubs, nil
}

func parseDetail(data []byte, skipShorts bool) (*models.VideoDetail, error) {
	var info detailJSON
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parse video detail: %w", err)
	}

	duration := int(info.Duration)
	if skipShorts && duration > 0 && duration < 60 {
		return nil, ErrShortVideo
	}

	return &models.VideoDetail{
		ID:          info.ID,
		Title:       info.Title,
		Description: models.Truncate(info.Description, 500),
		Thumbnail:   info.Thumbnail,
		Duration:    duration,
		ViewCount:   info.ViewCount,
		UploadDate:  info.UploadDate,
	}, nil
}

// bestThumbnail chọn ảnh có độ phân giải cao nhất.
func bestThumbnail(thumbnails []flatThumbnail) string {
	var best flatThumbnail
	for _, t := range thumbnails {
		if t.Width*t.Height > best.Width*best.Height {
			best = t
		}
	}
	return best.URL
}

// coalesce trả về chuỗi đầu tiên khác rỗng.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func channelURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID
}

// channelVideosURL trỏ vào tab videos của kênh, nơi yt-dlp liệt kê được
// danh sách phẳng.
func channelVideosURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID + "/videos"
}
