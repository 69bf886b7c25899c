package types

import (
	"bytes"
	"encoding/json"
)

// ActivityInfo 活动信息（列表接口的值类型）
type ActivityInfo struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityMap 以活动名为键的活动集合
// encoding/json 对 map 按键名排序输出，这里自定义序列化，
// 保证 JSON 对象的键顺序与目录的初始插入顺序一致
type ActivityMap struct {
	Names      []string
	Activities map[string]ActivityInfo
}

// MarshalJSON 按 Names 顺序输出 JSON 对象
func (m ActivityMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.Activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
