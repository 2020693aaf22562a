package utils

import (
	"fmt"
	"time"
	// 容器映像可能沒有 zoneinfo
	_ "time/tzdata"
)

// 未帶時區偏移的時間格式，依預設時區解讀
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// LoadLocation 載入 IANA 時區，空字串視為 UTC
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}

// ParseTargetTime 解析 ISO-8601 時間；有偏移量時照用，沒有時以 loc 解讀
func ParseTargetTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as an ISO-8601 date-time", value)
}

// FormatTargetTime 以 RFC3339 輸出並保留原本的偏移量
func FormatTargetTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ToEpochSeconds 轉成 Google API 使用的 epoch 秒
func ToEpochSeconds(t time.Time) int64 {
	return t.Unix()
}

// NowUTC 取得當前 UTC 時間（用於存儲到 MongoDB）
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DayKey 回傳 yyyymmdd，用於每日用量計數
func DayKey(t time.Time) string {
	return t.UTC().Format("20060102")
}
