package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/clinical"
)

// stringField reads a string argument.
func stringField(data map[string]interface{}, key string) (string, bool) {
	value, ok := data[key].(string)
	return value, ok
}

// listField accepts either a comma-separated string or a JSON array of strings.
func listField(data map[string]interface{}, key string) ([]string, bool) {
	switch value := data[key].(type) {
	case string:
		return clinical.SplitList(value), true
	case []string:
		return clinical.CleanList(value), true
	case []interface{}:
		items := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			items = append(items, s)
		}
		return clinical.CleanList(items), true
	default:
		return nil, false
	}
}

// intField accepts integers, integral JSON numbers and numeric strings that fit in an int.
func intField(data map[string]interface{}, key string) (int, bool) {
	switch value := data[key].(type) {
	case int:
		return value, true
	case int64:
		return int64ToInt(value)
	case float64:
		if value != math.Trunc(value) || value < math.MinInt || value >= math.MaxInt {
			return 0, false
		}
		return int(value), true
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, false
		}
		return int64ToInt(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		return n, err == nil
	default:
		return 0, false
	}
}

func int64ToInt(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// toMap flattens a domain value into the generic result payload using its json tags.
func toMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func success(v interface{}) (*Result, error) {
	data, err := toMap(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &Result{Success: true, Data: data}, nil
}

func failure(message string) *Result {
	return &Result{Success: false, Error: message}
}

// fromServiceError turns invalid input into a failed result and passes anything else through.
func fromServiceError(err error) (*Result, error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		return failure(err.Error()), nil
	}
	return nil, err
}
