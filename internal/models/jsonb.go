package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Emotion is one logged emotion for a day. Type is "positive" or "negative".
type Emotion struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// PathEntry is one followed Eightfold Path item for a day.
type PathEntry struct {
	Path string `json:"path"`
	Note string `json:"note"`
}

type EmotionList []Emotion

type PathList []PathEntry

type RecoveryCodeList []RecoveryCode

func (l EmotionList) Value() (driver.Value, error)      { return jsonbValue(l) }
func (l *EmotionList) Scan(value interface{}) error     { return jsonbScan(value, l) }
func (l PathList) Value() (driver.Value, error)         { return jsonbValue(l) }
func (l *PathList) Scan(value interface{}) error        { return jsonbScan(value, l) }
func (l RecoveryCodeList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *RecoveryCodeList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

func jsonbValue(v any) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonbScan(value interface{}, dest any) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type: %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
