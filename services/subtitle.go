package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Cấu trúc phụ đề json3 của YouTube: danh sách event, mỗi event có mốc
// thời gian tStartMs và các đoạn chữ segs.
type json3Payload struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	TStartMs int64      `json:"tStartMs"`
	Segs     []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
}

// ParseJSON3 chuyển payload phụ đề json3 thành hai dạng văn bản: bản thường
// (các đoạn nối bằng dấu cách) và bản kèm mốc thời gian ("[mm:ss] ..." mỗi dòng).
// Payload không có events trả về hai chuỗi rỗng, không phải lỗi.
func ParseJSON3(data []byte) (plain string, timestamped string, err error) {
	var payload json3Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", "", fmt.Errorf("không đọc được phụ đề json3: %w", err)
	}

	var parts []string
	var lines []string
	for _, ev := range payload.Events {
		if len(ev.Segs) == 0 {
			continue
		}
		var b strings.Builder
		for _, seg := range ev.Segs {
			b.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(b.String())
		if text == "" || text == "\n" {
			continue
		}
		parts = append(parts, text)
		lines = append(lines, fmt.Sprintf("[%s] %s", formatOffset(ev.TStartMs), text))
	}

	return strings.Join(parts, " "), strings.Join(lines, "\n"), nil
}

// formatOffset đổi mili giây thành "mm:ss". Phút không quy đổi sang giờ,
// video dài hơn một tiếng sẽ ra "75:30".
func formatOffset(ms int64) string {
	total := ms / 1000
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
