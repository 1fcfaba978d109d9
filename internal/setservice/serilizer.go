package setservice

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SetData 表示集合的可序列化数据结构
type SetData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     Order     `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	Items     []string  `json:"items,omitempty"`
}

// FormatSetInfo 返回集合信息的格式化字符串表示
func FormatSetInfo(info SetInfo) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Set: %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("ID: %s\n", info.ID))
	sb.WriteString(fmt.Sprintf("Order: %s\n", info.Stats.Order))
	sb.WriteString(fmt.Sprintf("Size: %d (height %d)\n", info.Stats.Size, info.Stats.Height))
	sb.WriteString(fmt.Sprintf("Created: %s\n", formatTimeAgo(info.Stats.CreatedAt)))
	sb.WriteString(fmt.Sprintf("Operations: %d added, %d removed\n",
		info.Stats.Added, info.Stats.Removed))

	return sb.String()
}

// FormatSetStats 返回集合统计信息的格式化字符串表示
func FormatSetStats(stats Stats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d\n", stats.Size))
	if stats.Size > 0 {
		sb.WriteString(fmt.Sprintf("Height: %d\n", stats.Height))
	} else {
		sb.WriteString("Height: empty\n")
	}

	sb.WriteString(fmt.Sprintf("Order: %s\n", stats.Order))
	sb.WriteString(fmt.Sprintf("Created: %s\n", formatTimeAgo(stats.CreatedAt)))
	sb.WriteString(fmt.Sprintf("Operations: %d added, %d removed\n",
		stats.Added, stats.Removed))

	if stats.Rejected > 0 {
		sb.WriteString(fmt.Sprintf("Rejected: %d\n", stats.Rejected))
	}

	if stats.Cleared > 0 {
		sb.WriteString(fmt.Sprintf("Cleared: %d times\n", stats.Cleared))
	}

	return sb.String()
}

// SerializeSetData 将集合数据序列化为JSON
func SerializeSetData(data SetData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// DeserializeSetData 从JSON反序列化集合数据
func DeserializeSetData(data []byte) (SetData, error) {
	var setData SetData
	if err := json.Unmarshal(data, &setData); err != nil {
		return SetData{}, errors.Wrap(err, "failed to decode set data")
	}
	return setData, nil
}

// formatTimeAgo 将时间格式化为人类可读的"多久之前"字符串
func formatTimeAgo(t time.Time) string {
	duration := time.Since(t)

	seconds := int(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := int(duration.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := int(duration.Hours())
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(duration.Hours() / 24)
	return fmt.Sprintf("%d days ago", days)
}

// ParseItems 解析以逗号分隔的元素字符串，去掉首尾空白并忽略空项
func ParseItems(itemsStr string) []string {
	if itemsStr == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(itemsStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// FormatItems 将元素切片格式化为以逗号分隔的字符串
func FormatItems(items []string) string {
	return strings.Join(items, ",")
}
